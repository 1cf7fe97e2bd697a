// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRegistry_ShippedCatalog(t *testing.T) {
	reg, err := LoadRegistry("../../configs/task-registry.json")
	assert.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	assert.Len(t, reg.Tasks, 3)

	for _, taskType := range []string{"score-posting", "check-eligibility", "dispatch-notifications"} {
		task, err := reg.FindTask(taskType)
		assert.NoError(t, err)
		assert.Equal(t, taskType, task.TaskType)
		assert.NotEmpty(t, task.DisplayName)
		assert.NotEmpty(t, task.ErrorCodes)
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry("nope.json")
	assert.Error(t, err)
}

func TestFindTask_Unknown(t *testing.T) {
	reg := &TaskRegistry{Tasks: []Task{{TaskType: "score-posting"}}}
	_, err := reg.FindTask("unknown-task")
	assert.Error(t, err)
}
