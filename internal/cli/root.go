package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/crmarques/heckler-report/internal/cli/commandmeta"
	"github.com/crmarques/heckler-report/internal/cli/common"
	processcmd "github.com/crmarques/heckler-report/internal/cli/process"
	showcmd "github.com/crmarques/heckler-report/internal/cli/show"
	"github.com/crmarques/heckler-report/internal/cli/version"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

const (
	groupBasic = "basic"
	groupOther = "other"
)

func NewRootCommand(deps Dependencies) *cobra.Command {
	commandDeps := deps.commandDependencies()
	var globalFlags common.GlobalFlags

	root := &cobra.Command{
		Use:   commandmeta.RootCommandName,
		Short: "Filter configuration-management run reports and store them per host",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			if err := common.ValidateOutputFormat(globalFlags.Output); err != nil {
				return err
			}
			if err := common.ValidateOutputFormatForCommandPath(command.CommandPath(), globalFlags.Output); err != nil {
				return err
			}
			if !commandmeta.RequiresBootstrapPath(command.CommandPath()) {
				return nil
			}
			return bootstrapCommand(command, commandDeps, &globalFlags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	common.BindGlobalFlags(root.PersistentFlags(), &globalFlags)
	common.RegisterOutputFlagCompletion(root)
	root.PersistentFlags().BoolP("help", "h", false, "help for command")

	root.AddGroup(
		&cobra.Group{ID: groupBasic, Title: "Basic Commands:"},
		&cobra.Group{ID: groupOther, Title: "Other Commands:"},
	)
	for _, command := range []*cobra.Command{
		processcmd.NewCommand(&globalFlags),
		showcmd.NewCommand(&globalFlags),
	} {
		command.GroupID = groupBasic
		root.AddCommand(command)
	}

	versionCommand := version.NewCommand(&globalFlags)
	versionCommand.GroupID = groupOther
	root.AddCommand(versionCommand)
	root.SetCompletionCommandGroupID(groupOther)
	root.SetHelpCommandGroupID(groupOther)

	printUsageOnArgErrors(root)

	return root
}

// bootstrapCommand builds the runtime for commands that touch reports and
// stores it, together with its logger, in the command context.
func bootstrapCommand(command *cobra.Command, deps common.CommandDependencies, globalFlags *common.GlobalFlags) error {
	bootstrap, err := common.RequireBootstrap(deps)
	if err != nil {
		return err
	}

	ctx := command.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runtime, err := bootstrap(ctx, common.Selection(globalFlags), command.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx = common.WithRuntime(ctx, runtime)
	ctx = logr.NewContext(ctx, runtime.Logger)
	command.SetContext(ctx)

	runtime.Logger.V(1).Info("runtime ready",
		"command", command.CommandPath(),
		"report_dir", runtime.Config.ReportDir,
		"config", globalFlags.ConfigPath,
		"output", globalFlags.Output,
	)
	return nil
}

// printUsageOnArgErrors makes every command print its usage to stderr when
// its positional arguments are rejected.
func printUsageOnArgErrors(command *cobra.Command) {
	if validate := command.Args; validate != nil {
		command.Args = func(current *cobra.Command, args []string) error {
			err := validate(current, args)
			if err != nil {
				if usage := strings.TrimRight(current.UsageString(), "\n"); usage != "" {
					_, _ = fmt.Fprintln(current.ErrOrStderr(), usage)
				}
			}
			return err
		}
	}
	for _, child := range command.Commands() {
		printUsageOnArgErrors(child)
	}
}
