package config

import (
	"sync"
)

// ConfigManager holds the loaded configuration for the lifetime of a command.
// ConfigManager 在命令生命周期内保存已加载的配置。
type ConfigManager struct {
	configPath string
	mutex      sync.RWMutex
	config     *Config
}

// NewConfigManager creates a new configuration manager instance
// NewConfigManager 创建新的配置管理器实例
func NewConfigManager(configPath string) *ConfigManager {
	return &ConfigManager{
		configPath: configPath,
	}
}

// LoadConfig loads the configuration from the manager's path
// LoadConfig 从管理器路径加载配置
func (cm *ConfigManager) LoadConfig() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cfg, err := LoadConfig(cm.configPath)
	if err != nil {
		return err
	}
	cm.config = cfg
	return nil
}

// LoadOrDefault loads the configuration, falling back to DefaultConfig when
// the file can't be read. The load error, if any, is returned alongside.
// LoadOrDefault 加载配置，失败时回退到默认配置并返回错误。
func (cm *ConfigManager) LoadOrDefault() (*Config, error) {
	if err := cm.LoadConfig(); err != nil {
		cm.UpdateConfig(DefaultConfig())
		return cm.GetConfig(), err
	}
	return cm.GetConfig(), nil
}

// SaveConfig saves the current configuration to the manager's path
// SaveConfig 将当前配置保存到管理器路径
func (cm *ConfigManager) SaveConfig() error {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}
	return SaveConfig(cm.configPath, cm.config)
}

// GetConfig returns a copy of the current configuration
// GetConfig 返回当前配置的副本
func (cm *ConfigManager) GetConfig() *Config {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}

	// Return a copy to prevent external modifications
	cfgCopy := *cm.config
	return &cfgCopy
}

// UpdateConfig updates the current configuration
// UpdateConfig 更新当前配置
func (cm *ConfigManager) UpdateConfig(newConfig *Config) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cm.config = newConfig
}

// GetConfigPath returns the path this manager reads and writes.
func (cm *ConfigManager) GetConfigPath() string {
	return cm.configPath
}
