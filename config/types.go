package config

const (
	ConfigFileEnvVar  = "HECKLER_REPORT_CONFIG"
	ReportDirEnvVar   = "HECKLER_REPORT_DIR"
	LogLevelEnvVar    = "HECKLER_LOG_LEVEL"
	LogFormatEnvVar   = "HECKLER_LOG_FORMAT"
	DefaultConfigPath = "/etc/heckler/report.yaml"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

type Config struct {
	ReportDir      string          `yaml:"report-dir"`
	Logging        Logging         `yaml:"logging,omitempty"`
	Metrics        Metrics         `yaml:"metrics,omitempty"`
	CodeRepository *CodeRepository `yaml:"code-repository,omitempty"`
}

type Logging struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

type Metrics struct {
	// Textfile is the node-exporter textfile collector target. Empty
	// disables the export.
	Textfile string `yaml:"textfile,omitempty"`
}

// CodeRepository points at a local checkout of the configuration code.
// When set, configuration versions must resolve to a commit in it.
type CodeRepository struct {
	BaseDir string `yaml:"base-dir"`
}

func (c Config) CodeRepositoryBaseDir() string {
	if c.CodeRepository == nil {
		return ""
	}
	return c.CodeRepository.BaseDir
}

// Overrides are applied on top of the file and the environment. Empty
// fields leave the loaded value untouched.
type Overrides struct {
	ReportDir       string
	LogLevel        string
	LogFormat       string
	MetricsTextfile string
	CodeRepository  string
}

type Selection struct {
	// Path is the explicit config file. When empty the loader falls back to
	// HECKLER_REPORT_CONFIG and then to DefaultConfigPath.
	Path      string
	Overrides Overrides
}
