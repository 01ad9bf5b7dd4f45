package common

import (
	"github.com/crmarques/heckler-report/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GlobalFlags struct {
	ConfigPath      string
	ReportDir       string
	LogLevel        string
	LogFormat       string
	MetricsTextfile string
	CodeRepository  string
	NoStatus        bool
	NoColor         bool
	Output          string
}

type InputFlags struct {
	Payload string
}

const (
	NoStatusFlag = "no-status"
	NoColorFlag  = "no-color"
)

// BindGlobalFlags registers the flags shared by every command, normally on
// the root command's persistent flag set.
func BindGlobalFlags(flagSet *pflag.FlagSet, flags *GlobalFlags) {
	flagSet.StringVar(&flags.ConfigPath, "config", "", "config file path (default $"+config.ConfigFileEnvVar+" or "+config.DefaultConfigPath+")")
	flagSet.StringVar(&flags.ReportDir, "report-dir", "", "report root directory")
	flagSet.StringVar(&flags.LogLevel, "log-level", "", "log level: debug|info|warn|error")
	flagSet.StringVar(&flags.LogFormat, "log-format", "", "log format: json|console")
	flagSet.StringVar(&flags.MetricsTextfile, "metrics-textfile", "", "write run metrics to this textfile collector path")
	flagSet.StringVar(&flags.CodeRepository, "code-repo", "", "local checkout used to verify configuration versions")
	flagSet.BoolVarP(&flags.NoStatus, NoStatusFlag, "n", false, "hide status output")
	flagSet.BoolVar(&flags.NoColor, NoColorFlag, false, "disable color output")
	flagSet.StringVarP(&flags.Output, "output", "o", OutputAuto, "output format: auto|text|json|yaml")
}

func BindInputFlags(command *cobra.Command, flags *InputFlags) {
	command.Flags().StringVarP(&flags.Payload, "payload", "f", "", "report file path (use '-' to read from stdin)")
}

// Selection turns the global flags into a config selection. Flags take
// precedence over the config file and the environment.
func Selection(flags *GlobalFlags) config.Selection {
	if flags == nil {
		return config.Selection{}
	}
	return config.Selection{
		Path: flags.ConfigPath,
		Overrides: config.Overrides{
			ReportDir:       flags.ReportDir,
			LogLevel:        flags.LogLevel,
			LogFormat:       flags.LogFormat,
			MetricsTextfile: flags.MetricsTextfile,
			CodeRepository:  flags.CodeRepository,
		},
	}
}

func RegisterOutputFlagCompletion(command *cobra.Command) {
	_ = command.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{OutputAuto, OutputText, OutputJSON, OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})
}
