package core

type Conf struct {
	Version            string `long:"version" description:"version of qae" env:"QAE_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"QAE_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"QAE_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"QAE_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"QAE_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"QAE_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"QAE_LOG_ROTATION_MAX_DAYS"`
	MetricsDir         string `long:"metrics-dir" description:"directory of daily build metrics files, disabled when empty" env:"QAE_METRICS_DIR"`
}

// OutputConf selects how a built circuit is written.
type OutputConf struct {
	Format string `long:"format" short:"f" description:"output format" default:"quil" choice:"quil" choice:"qasm3" choice:"json" env:"QAE_FORMAT"`
	Pretty bool   `long:"pretty" description:"indent json output" env:"QAE_PRETTY"`
	Header bool   `long:"header" description:"prefix the output with build id, time and version" env:"QAE_HEADER"`
	Output string `long:"output" short:"o" description:"output file, standard output when empty" env:"QAE_OUTPUT"`
}
