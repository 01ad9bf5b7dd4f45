package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/crmarques/heckler-report/internal/cli/common"
	"github.com/spf13/cobra"
)

// Set at link time with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type buildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

func current() buildInfo {
	return buildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

func NewCommand(globalFlags *common.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print heckler-report build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.WriteOutput(cmd, globalFlags.Output, current(), func(w io.Writer, item buildInfo) error {
				_, err := fmt.Fprintf(w, "heckler-report %s (%s, built %s, %s)\n", item.Version, item.Commit, item.BuildDate, item.GoVersion)
				return err
			})
		},
	}
}
