package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/pubchem-go/pkg/errors"
)

func newSafetyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safety <cid>",
		Short: "Fetch the GHS safety classification of a compound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cid, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.InvalidParam("cid must be an integer").WithCause(err)
			}
			data, err := cliCtx.Client.SafetyData(cmd.Context(), cid)
			if err != nil {
				return err
			}
			return PrintResult(cmd, data)
		},
	}
	return cmd
}
