// internal/workers/notification/dispatch-notifications/validation.go
package dispatchnotifications

import "internmatch/internal/common/validation"

// defaultInputSchema mirrors the task-registry entry for this task; the
// worker-manager normally injects the registry's schema via Config.
var defaultInputSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"postingId"},
	"properties": map[string]interface{}{
		"postingId": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"minScore": map[string]interface{}{
			"type":    "integer",
			"minimum": 0,
			"maximum": 100,
		},
		"trigger": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{TriggerPostingCreated, TriggerManual},
		},
	},
}

func validateInput(raw, schema map[string]interface{}) error {
	if schema == nil {
		schema = defaultInputSchema
	}
	return validation.ValidateAgainstSchema(schema, raw)
}
