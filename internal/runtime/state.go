package runtime

// ConfigPath stores the path to the configuration file provided via CLI flags.
// ConfigPath 存储通过 CLI 标志提供的配置文件路径。
var ConfigPath string

// SinkPath overrides the configured sink file when set via CLI flags.
// SinkPath 通过 CLI 标志设置时覆盖配置中的 Sink 文件路径。
var SinkPath string
