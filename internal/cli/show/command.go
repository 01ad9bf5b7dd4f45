package show

import (
	"encoding/json"
	"fmt"

	"github.com/crmarques/heckler-report/internal/cli/common"
	"github.com/spf13/cobra"
)

func NewCommand(globalFlags *common.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <host> <version>",
		Short: "Print a stored filtered report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtime, ok := common.RuntimeFrom(cmd.Context())
			if !ok {
				return common.ValidationError("report runtime is not configured", nil)
			}
			store, err := common.RequireStore(runtime)
			if err != nil {
				return err
			}

			stored, err := store.Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if globalFlags.Output == common.OutputJSON {
				value, err := stored.Value()
				if err != nil {
					return err
				}
				encoded, err := json.MarshalIndent(value, "", "  ")
				if err != nil {
					return common.ValidationError("report cannot be rendered as json", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}

			encoded, err := stored.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(encoded)
			return err
		},
	}
}
