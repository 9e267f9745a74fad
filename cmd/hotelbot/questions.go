package main

import (
	"fmt"

	"github.com/spf13/cobra"

	chatdomain "pethotel/internal/chat/domain"
)

func questionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the known questions and their query types",
		// pas besoin de configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, q := range chatdomain.DefaultCatalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %s\n", q.QueryType(), q.Display())
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the version",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hotelbot %s\n", version)
		},
	}
}
