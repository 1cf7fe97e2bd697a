// internal/workers/notification/dispatch-notifications/config.go
package dispatchnotifications

import "time"

type Config struct {
	MinScore    int // fallback threshold when the job input carries none
	SNSEnabled  bool
	InputSchema map[string]interface{} // registry schema; nil falls back to the built-in one
	Timeout     time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MinScore: 50,
		Timeout:  60 * time.Second,
	}
}
