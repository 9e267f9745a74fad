package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pethotel/internal/bootstrap"
	"pethotel/internal/shared/config"
	"pethotel/internal/shared/logger"
)

// cliState état partagé entre les sous-commandes, rempli par PersistentPreRunE
type cliState struct {
	configDir  string
	sourceKind string
	sourcePath string
	logLevel   string

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:   "hotelbot",
		Short: "🐾 Pet hotel analytics chatbot",
		Long: `hotelbot answers the pet hotel's three known analytics questions
and runs the matching aggregations over the configured data source.`,
		SilenceUsage:      true,
		PersistentPreRunE: state.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&state.configDir, "config", "", "directory containing config.yaml (default: ./configs or .)")
	flags.StringVar(&state.sourceKind, "source-kind", "", "override source.kind (xlsx, csv, sql)")
	flags.StringVar(&state.sourcePath, "source-path", "", "override source.path (workbook or csv directory)")
	flags.StringVar(&state.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(askCmd(state))
	root.AddCommand(simulateCmd(state))
	root.AddCommand(questionsCmd())
	root.AddCommand(versionCmd())

	return root
}

func (s *cliState) load(cmd *cobra.Command, _ []string) error {
	var paths []string
	if s.configDir != "" {
		paths = append(paths, s.configDir)
	}

	cfg, err := config.Load(paths...)
	if err != nil {
		return err
	}
	if s.sourceKind != "" {
		cfg.Source.Kind = s.sourceKind
	}
	if s.sourcePath != "" {
		cfg.Source.Path = s.sourcePath
	}
	if s.logLevel != "" {
		cfg.Logging.Level = s.logLevel
	}

	zapLogger, err := logger.New(cfg.Logging.Level, "console")
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.log = logger.NewZapAdapter(zapLogger)
	return nil
}

// app assemble les composants; l'appelant ferme l'App retournée
func (s *cliState) app(cmd *cobra.Command) (*bootstrap.App, error) {
	app, err := bootstrap.New(cmd.Context(), s.cfg, s.log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.cfg.Source.Describe(), err)
	}
	return app, nil
}
