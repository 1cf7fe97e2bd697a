// internal/workers/matching/score-posting/config.go
package scoreposting

import "time"

type Config struct {
	MaxMatches int
	Timeout    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxMatches: 20,
		Timeout:    30 * time.Second,
	}
}
