package config

const (
	// DefaultConfigPath is the standard location for the monolog configuration file.
	// DefaultConfigPath 是 monolog 配置文件的标准位置。
	DefaultConfigPath = "/etc/monolog/config.yaml"

	// DefaultSinkPath is where committed events are written when no path is configured.
	// DefaultSinkPath 是未配置路径时事件写入的位置。
	DefaultSinkPath = "/var/log/monolog/monolog.log"

	// DefaultMetricsAddr is the listen address for the Prometheus endpoint.
	// DefaultMetricsAddr 是 Prometheus 端点的监听地址。
	DefaultMetricsAddr = ":9464"

	// Formatter names accepted in configuration.
	// 配置中可用的格式化器名称。
	FormatterDefault = "default"
	FormatterRaw     = "raw"
)
