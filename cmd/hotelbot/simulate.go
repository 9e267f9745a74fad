package main

import (
	"github.com/spf13/cobra"

	analyticsdomain "pethotel/internal/analytics/domain"
	exportapp "pethotel/internal/export/application"
	exportdomain "pethotel/internal/export/domain"
)

func simulateCmd(state *cliState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "simulate [query_type...]",
		Short: "Run the aggregations and print their results (all three by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			exportFormat, err := exportdomain.ParseExportFormat(format)
			if err != nil {
				return err
			}

			queryTypes := args
			if len(queryTypes) == 0 {
				queryTypes = analyticsdomain.QueryTypeNames()
			}
			job, err := exportdomain.NewExportJob(exportFormat, queryTypes)
			if err != nil {
				return err
			}

			app, err := state.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return exportapp.NewExportService(app.Executor).Export(cmd.Context(), cmd.OutOrStdout(), job)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(exportdomain.ExportFormatTable), "output format (table, csv)")
	return cmd
}
