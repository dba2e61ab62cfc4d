package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/pubchem-go/internal/logging"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

func newDownloadCmd() *cobra.Command {
	var (
		namespace string
		format    string
		outPath   string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "download <identifier>",
		Short: "Download matching records to a file",
		Long: "Download the raw service response for an identifier to a file.\n" +
			"Any output format the service supports may be requested: JSON, SDF,\n" +
			"XML, ASNT, ASNB, CSV, PNG or TXT.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			err = cliCtx.Client.Download(cmd.Context(), pug.Request{
				Identifier: args[0],
				Namespace:  namespace,
				Output:     format,
			}, outPath, overwrite)
			if err != nil {
				return err
			}
			cliCtx.Logger.Info("download complete",
				logging.String("path", outPath),
				logging.String("format", format))
			return nil
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", pug.NamespaceCID, "identifier namespace")
	cmd.Flags().StringVarP(&format, "format", "f", pug.OutputSDF, "output format (JSON, SDF, XML, ASNT, ASNB, CSV, PNG, TXT)")
	cmd.Flags().StringVar(&outPath, "out", "", "destination file path")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace the destination if it exists")
	cobra.CheckErr(cmd.MarkFlagRequired("out"))
	return cmd
}

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "sources <substance|assay>",
		Short:     "List all current depositors of substance or assay records",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{pug.DomainSubstance, pug.DomainAssay},
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			names, err := cliCtx.Client.Sources(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return PrintResult(cmd, names)
		},
	}
	return cmd
}
