// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*TaskRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg TaskRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// FindTask returns the registry entry for a task type.
func (r *TaskRegistry) FindTask(taskType string) (*Task, error) {
	for i := range r.Tasks {
		if r.Tasks[i].TaskType == taskType {
			return &r.Tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task type not in registry: %s", taskType)
}
