package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/pubchem-go/internal/logging"
	"github.com/turtacn/pubchem-go/pkg/errors"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

func newSearchCmd() *cobra.Command {
	var (
		namespace  string
		searchType string
		threshold  int
		maxRecords int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a structure search and list the matching CIDs",
		Long: "Run a substructure, superstructure, similarity or identity search.\n" +
			"Structure searches are answered asynchronously by the service; the\n" +
			"command polls the returned listkey until the job resolves.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			switch searchType {
			case pug.SearchSubstructure, pug.SearchSuperstructure, pug.SearchSimilarity, pug.SearchIdentity:
			default:
				return errors.InvalidParam("search type must be substructure, superstructure, similarity or identity")
			}

			options := pug.ExtraOptions()
			if threshold > 0 {
				options.Set("Threshold", strconv.Itoa(threshold))
			}
			if maxRecords > 0 {
				options.Set("MaxRecords", strconv.Itoa(maxRecords))
			}

			cliCtx.Logger.Info("running structure search",
				logging.String("type", searchType),
				logging.String("query", args[0]))

			cids, err := cliCtx.Client.CIDs(cmd.Context(), pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
				SearchType: searchType,
				Options:    options,
			})
			if err != nil {
				return err
			}
			return PrintResult(cmd, cids)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceSMILES, "query namespace (smiles, inchi, cid, sdf)")
	cmd.Flags().StringVarP(&searchType, "type", "t", pug.SearchSimilarity,
		"search type (substructure, superstructure, similarity, identity)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "similarity threshold in percent")
	cmd.Flags().IntVar(&maxRecords, "max-records", 0, "cap the number of results")
	return cmd
}

func newPropsCmd() *cobra.Command {
	var (
		namespace  string
		properties []string
	)

	cmd := &cobra.Command{
		Use:   "props <identifier>",
		Short: "Fetch a property table for matching compounds",
		Long: "Fetch a compound property table.  Property names may use either the\n" +
			"service's CamelCase form (MolecularWeight) or the underscore alias\n" +
			"(molecular_weight).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			rows, err := cliCtx.Client.Properties(cmd.Context(), pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
			}, properties)
			if err != nil {
				return err
			}
			return PrintResult(cmd, rows)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceName, "identifier namespace")
	cmd.Flags().StringSliceVarP(&properties, "properties", "p",
		[]string{"MolecularFormula", "MolecularWeight", "CanonicalSMILES"},
		"properties to fetch")
	return cmd
}
