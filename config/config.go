package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port           int
	Algorithms     []string
	LogLevel       string
	TracingEnabled bool
	TracingOutput  string
	ServiceName    string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = Load("./"); err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads config.yaml from dir. A missing file leaves the defaults in place;
// SCHEDULER_* environment variables override both.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.algorithms", []string{"fcfs", "sjf", "priority"})
	v.SetDefault("log.level", "info")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "")
	v.SetDefault("service.name", "cpu-scheduler")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:           v.GetInt("port"),
		Algorithms:     v.GetStringSlice("scheduler.algorithms"),
		LogLevel:       v.GetString("log.level"),
		TracingEnabled: v.GetBool("tracing.enabled"),
		TracingOutput:  v.GetString("tracing.output"),
		ServiceName:    v.GetString("service.name"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("scheduler.algorithms cannot be empty")
	}
	return nil
}
