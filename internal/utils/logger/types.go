package logger

// DiagnosticsConfig configures the logger monolog uses for its own messages
// (config loading, sink replacement, subscriber failures).
// DiagnosticsConfig 配置 monolog 自身诊断信息使用的日志记录器。
type DiagnosticsConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	// Enabled: 是否启用诊断日志
	Level string `yaml:"level" toml:"level"`
	// Level: 日志级别（debug, info, warn, error）
	Path string `yaml:"path" toml:"path"`
	// Path: 诊断日志文件路径，为空时输出到 stderr
	MaxSize int `yaml:"max_size" toml:"max_size"`
	// MaxSize: 轮转前的最大大小（MB）
	MaxBackups int `yaml:"max_backups" toml:"max_backups"`
	// MaxBackups: 保留的旧文件最大数量
	MaxAge int `yaml:"max_age" toml:"max_age"`
	// MaxAge: 保留旧文件的最大天数
	Compress bool `yaml:"compress" toml:"compress"`
	// Compress: 是否压缩旧文件
}
