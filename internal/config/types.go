// Package config provides configuration loading and management for the lcms CLI.
package config

// LogConfig holds logging configuration for all lcms commands
type LogConfig struct {
	Level           string `mapstructure:"level" json:"level" yaml:"level"`                                  // debug, info, warn, error
	Format          string `mapstructure:"format" json:"format" yaml:"format"`                               // text, json, pretty
	Output          string `mapstructure:"output" json:"output" yaml:"output"`                               // stdout, stderr, or file path
	FilePath        string `mapstructure:"file_path" json:"file_path" yaml:"file_path"`                      // path to log file (in addition to output)
	MaxSizeMB       int    `mapstructure:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`                // max size in MB before rotation
	MaxBackups      int    `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`                // max number of old log files to keep
	MaxAgeDays      int    `mapstructure:"max_age_days" json:"max_age_days" yaml:"max_age_days"`             // max days to retain old log files
	EnableCaller    bool   `mapstructure:"enable_caller" json:"enable_caller" yaml:"enable_caller"`          // include source file/line in logs
	NoColor         bool   `mapstructure:"no_color" json:"no_color" yaml:"no_color"`                         // disable colored output (pretty format only)
	AuditPath       string `mapstructure:"audit_path" json:"audit_path" yaml:"audit_path"`                   // path to the catalog change journal
	AuditMaxAgeDays int    `mapstructure:"audit_max_age_days" json:"audit_max_age_days" yaml:"audit_max_age_days"` // max days to retain audit logs
}

// OutputConfig holds output formatting options
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format" yaml:"format"` // table, json, yaml, quiet
	Color  bool   `mapstructure:"color" json:"color" yaml:"color"`
}

// LibraryConfig describes where the catalog lives on disk and how it is kept
type LibraryConfig struct {
	Path     string `mapstructure:"path" json:"path" yaml:"path"`                // library file; empty means the default data dir
	RootName string `mapstructure:"root_name" json:"root_name" yaml:"root_name"` // name of the root category
	AutoSave bool   `mapstructure:"auto_save" json:"auto_save" yaml:"auto_save"` // persist after every mutating command
}

// Config is the full configuration for the lcms CLI
type Config struct {
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log"`
	Output  OutputConfig  `mapstructure:"output" json:"output" yaml:"output"`
	Library LibraryConfig `mapstructure:"library" json:"library" yaml:"library"`
}

// DefaultConfig returns the default CLI configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:           "info",
			Format:          "text",
			Output:          "stderr",
			MaxSizeMB:       100,
			MaxBackups:      3,
			MaxAgeDays:      28,
			EnableCaller:    false,
			AuditMaxAgeDays: 365,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
		Library: LibraryConfig{
			Path:     "",
			RootName: "Library",
			AutoSave: true,
		},
	}
}
