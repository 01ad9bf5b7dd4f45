package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crmarques/heckler-report/faults"
	"github.com/crmarques/heckler-report/internal/cli/commandmeta"
	"github.com/crmarques/heckler-report/internal/cli/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Dependencies struct {
	Bootstrap common.Bootstrapper
}

// Runtime is the bootstrapped state handed to commands.
type Runtime = common.Runtime

func (d Dependencies) commandDependencies() common.CommandDependencies {
	return common.CommandDependencies{
		Bootstrap: d.Bootstrap,
	}
}

func Execute(deps Dependencies) error {
	return executeWithArgs(NewRootCommand(deps), os.Args[1:])
}

func executeWithArgs(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	command, err := root.ExecuteC()
	status := resolveStatusOptions(root, command)
	stderr := root.ErrOrStderr()

	if err != nil {
		if status.emit {
			writeExecutionErrorStatus(stderr, err, status.noColor)
		} else {
			_, _ = fmt.Fprintln(stderr, strings.TrimSpace(err.Error()))
		}
		return err
	}
	if status.emit {
		writeExecutionOKStatus(stderr, status.noColor)
	}
	return nil
}

// ExitCodeForError maps error categories to process exit codes. Best-effort
// failures exit 0.
func ExitCodeForError(err error) int {
	if err == nil {
		return 0
	}

	var bestEffort *common.BestEffortError
	if errors.As(err, &bestEffort) {
		return 0
	}

	switch faults.CategoryOf(err) {
	case faults.ValidationError:
		return 2
	case faults.NotFoundError:
		return 3
	case faults.InvalidVersionError:
		return 4
	case faults.WriteFailureError:
		return 5
	default:
		return 1
	}
}

func RequiresBootstrapPath(commandPath string) bool {
	return commandmeta.RequiresBootstrapPath(commandPath)
}

type statusOptions struct {
	emit    bool
	noColor bool
}

// resolveStatusOptions reads the parsed global flags after execution. Help
// output and commands without a status contract never get a status line.
func resolveStatusOptions(root *cobra.Command, executed *cobra.Command) statusOptions {
	globals := root.PersistentFlags()
	options := statusOptions{
		noColor: strings.TrimSpace(os.Getenv("NO_COLOR")) != "" || flagEnabled(globals, common.NoColorFlag),
	}
	if executed == nil || flagEnabled(globals, common.NoStatusFlag) || flagEnabled(executed.Flags(), "help") {
		return options
	}
	options.emit = commandmeta.EmitsExecutionStatusPath(strings.TrimSpace(executed.CommandPath()))
	return options
}

func flagEnabled(flags *pflag.FlagSet, name string) bool {
	value, err := flags.GetBool(name)
	return err == nil && value
}

func writeExecutionOKStatus(w io.Writer, noColor bool) {
	_, _ = fmt.Fprintf(w, "%s command executed successfully.\n", formatStatusLabel(w, "OK", noColor))
}

func writeExecutionErrorStatus(w io.Writer, err error, noColor bool) {
	description := "command execution failed"
	if err != nil {
		description = fmt.Sprintf("%s: %s", description, strings.TrimSpace(err.Error()))
	}
	_, _ = fmt.Fprintf(w, "%s %s.\n", formatStatusLabel(w, "ERROR", noColor), description)
}

func formatStatusLabel(w io.Writer, status string, noColor bool) string {
	label := "[" + status + "]"
	if noColor || !isColorTerminal(w) {
		return label
	}

	switch status {
	case "OK":
		return "\x1b[1;32m" + label + "\x1b[0m"
	case "ERROR":
		return "\x1b[1;31m" + label + "\x1b[0m"
	default:
		return label
	}
}

func isColorTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return false
	}

	term := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	return term != "" && term != "dumb"
}
