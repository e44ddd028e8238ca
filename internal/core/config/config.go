package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	Worker     WorkerConfig     `mapstructure:"WORKER"`
	Monitoring MonitoringConfig `mapstructure:"MONITORING"`
}

type WorkerConfig struct {
	// MaxLineBytes bounds a single task line on the control channel.
	MaxLineBytes int `mapstructure:"MAX_LINE_BYTES"`
}

type MonitoringConfig struct {
	// Enabled starts the debug HTTP server; the worker itself never listens.
	Enabled bool   `mapstructure:"ENABLED"`
	Addr    string `mapstructure:"ADDR"`
}

type ConfigManager struct {
	config     *Config
	configPath string
	mutex      sync.RWMutex
}

var (
	instance *ConfigManager
	once     sync.Once
)

func GetConfigManager() *ConfigManager {
	once.Do(func() {
		instance = &ConfigManager{
			configPath: ".env",
		}
	})
	return instance
}

func (cm *ConfigManager) SetConfigPath(path string) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	cm.configPath = path
	cm.config = nil
}

func (cm *ConfigManager) GetConfig() (*Config, error) {
	cm.mutex.RLock()
	if cm.config != nil {
		defer cm.mutex.RUnlock()
		return cm.config, nil
	}
	cm.mutex.RUnlock()

	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if cm.config != nil {
		return cm.config, nil
	}

	cfg, err := load(cm.configPath)
	if err != nil {
		return nil, err
	}
	cm.config = cfg
	return cm.config, nil
}

// load reads the optional config file and applies defaults. A missing file is
// not an error: the worker must run with zero configuration.
func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("WORKER.MAX_LINE_BYTES", 1<<20)
	v.SetDefault("MONITORING.ENABLED", false)
	v.SetDefault("MONITORING.ADDR", "127.0.0.1:9090")

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
