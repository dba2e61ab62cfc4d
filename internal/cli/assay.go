package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/pubchem-go/pkg/assay"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

func newAssayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assay",
		Short: "Retrieve assay records",
	}
	cmd.AddCommand(newAssayGetCmd())
	return cmd
}

func newAssayGetCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "get <identifier>",
		Short: "Fetch assay description records for an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			assays, err := assay.Get(cmd.Context(), cliCtx.Client, pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
			})
			if err != nil {
				return err
			}
			out := make([]map[string]interface{}, len(assays))
			for i, a := range assays {
				out[i] = a.ToMap()
			}
			return PrintResult(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceAID, "identifier namespace")
	return cmd
}
