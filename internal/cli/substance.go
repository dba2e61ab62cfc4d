package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/pubchem-go/pkg/pug"
	"github.com/turtacn/pubchem-go/pkg/substance"
)

func newSubstanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "substance",
		Short: "Retrieve substance records",
	}
	cmd.AddCommand(newSubstanceGetCmd())
	return cmd
}

func newSubstanceGetCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "get <identifier>",
		Short: "Fetch substance records for an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			substances, err := substance.Get(cmd.Context(), cliCtx.Client, pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
			})
			if err != nil {
				return err
			}
			out := make([]map[string]interface{}, len(substances))
			for i, s := range substances {
				out[i] = s.ToMap()
			}
			return PrintResult(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceSID,
		"identifier namespace (sid, name, sourceid/<depositor>)")
	return cmd
}
