package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/pubchem-go/internal/logging"
	"github.com/turtacn/pubchem-go/pkg/compound"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

func newCompoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Retrieve compound records",
	}
	cmd.AddCommand(
		newCompoundGetCmd(),
		newCompoundCIDsCmd(),
		newCompoundSynonymsCmd(),
	)
	return cmd
}

func newCompoundGetCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "get <identifier>",
		Short: "Fetch full compound records for an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			compounds, err := compound.Get(cmd.Context(), cliCtx.Client, pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
			})
			if err != nil {
				return err
			}
			cliCtx.Logger.Debug("compound records fetched", logging.Int("count", len(compounds)))

			out := make([]map[string]interface{}, len(compounds))
			for i, c := range compounds {
				out[i] = c.ToMap(cmd.Context())
			}
			return PrintResult(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceCID,
		"identifier namespace (cid, name, smiles, inchi, inchikey, formula)")
	return cmd
}

func newCompoundCIDsCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "cids <identifier>",
		Short: "List the CIDs matching an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cids, err := cliCtx.Client.CIDs(cmd.Context(), pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
			})
			if err != nil {
				return err
			}
			return PrintResult(cmd, cids)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceName, "identifier namespace")
	return cmd
}

func newCompoundSynonymsCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "synonyms <identifier>",
		Short: "List the ranked synonyms of matching compounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			sets, err := cliCtx.Client.Synonyms(cmd.Context(), pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
			})
			if err != nil {
				return err
			}
			if strings.ToLower(cliCtx.OutputFormat) == "text" {
				for _, set := range sets {
					for _, syn := range set.Synonyms {
						if err := PrintResult(cmd, syn); err != nil {
							return err
						}
					}
				}
				return nil
			}
			return PrintResult(cmd, sets)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceName, "identifier namespace")
	return cmd
}
