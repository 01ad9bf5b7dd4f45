package process

import (
	"fmt"
	"io"
	"strings"

	"github.com/crmarques/heckler-report/faults"
	"github.com/crmarques/heckler-report/internal/cli/common"
	"github.com/crmarques/heckler-report/internal/logging"
	"github.com/crmarques/heckler-report/report"
	"github.com/spf13/cobra"
)

type result struct {
	Host string `json:"host" yaml:"host"`
	Path string `json:"path" yaml:"path"`
}

func NewCommand(globalFlags *common.GlobalFlags) *cobra.Command {
	var input common.InputFlags
	var host string
	var strict bool

	command := &cobra.Command{
		Use:   "process",
		Short: "Filter a run report and write it for its host",
		Long: "Reads a run report, keeps only the resource statuses that changed or\n" +
			"were referenced by catalog logs, and writes it to\n" +
			"<report-dir>/<host>/heckler_<configuration_version>.yaml.",
		Example: "  heckler-report process --host web01 --payload last_run_report.yaml\n" +
			"  puppet_report | heckler-report process --strict",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtime, ok := common.RuntimeFrom(cmd.Context())
			if !ok {
				return common.ValidationError("report runtime is not configured", nil)
			}
			if runtime.Flush != nil {
				defer runtime.Flush()
			}
			processor, err := common.RequireProcessor(runtime)
			if err != nil {
				return err
			}

			data, err := common.ReadInput(cmd, input)
			if err != nil {
				return readFailure(runtime, host, strict, err)
			}

			decoded, err := report.Decode(data)
			if err != nil {
				return readFailure(runtime, host, strict, err)
			}

			targetHost := strings.TrimSpace(host)
			if targetHost == "" {
				targetHost = decoded.Host()
			}
			if targetHost == "" {
				err := common.ValidationError("host is required: provide --host or a report with a host field", nil)
				return readFailure(runtime, host, strict, err)
			}

			var path string
			if strict {
				path, err = processor.Run(cmd.Context(), targetHost, decoded)
				if err != nil {
					return err
				}
			} else {
				path = processor.Process(cmd.Context(), targetHost, decoded)
				if path == "" {
					return failure(false, faults.NewTypedError(
						faults.WriteFailureError,
						fmt.Sprintf("report for %s was not written; see log for details", targetHost),
						nil,
					))
				}
			}

			return common.WriteOutput(cmd, globalFlags.Output, result{Host: targetHost, Path: path}, func(w io.Writer, item result) error {
				_, err := fmt.Fprintln(w, item.Path)
				return err
			})
		},
	}

	common.BindInputFlags(command, &input)
	command.Flags().StringVar(&host, "host", "", "node name the report belongs to (default: the report host field)")
	command.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the report cannot be written")

	return command
}

// readFailure reports a payload that never reached the processor the same
// way the processor reports a failed write.
func readFailure(runtime common.Runtime, host string, strict bool, err error) error {
	logging.Critical(runtime.Logger, err, "Unable to read report",
		"host", host,
		"category", string(faults.CategoryOf(err)),
	)
	return failure(strict, err)
}

func failure(strict bool, err error) error {
	if strict {
		return err
	}
	return &common.BestEffortError{Err: err}
}
