package main

import (
	"log/slog"

	"github.com/myrjola/detectivequest/internal/config"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/game"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "case",
	Title: "Case files",
}

type application struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	app := &application{}

	rootCmd := &cobra.Command{
		Use:   "detectivequest",
		Short: "Explore the mansion, collect clues and accuse the culprit",
		Long: `Detective Quest is a text adventure. Walk through the rooms of the mansion with
(e) left, (d) right and (s) back, then accuse the suspect at least two clues point to.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.play(cmd)
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("env-file", ".env", "optional file with environment variables")

	rootCmd.AddGroup(Group)
	rootCmd.AddCommand(newMapCmd(), newSuspectsCmd())

	return rootCmd
}

func (app *application) setup(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return errors.Wrap(err, "invalid env-file flag")
	}
	if err = config.LoadDotEnv(envFile); err != nil {
		return err
	}
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	// Logs go to stderr, stdout belongs to the game.
	app.logger = logging.New(cmd.ErrOrStderr(), cfg.Level())
	return nil
}

func (app *application) play(cmd *cobra.Command) error {
	g, err := game.New(console.New(cmd.InOrStdin(), cmd.OutOrStdout()), app.logger)
	if err != nil {
		app.logger.Error("could not set up the case", errors.SlogError(err))
		return err
	}
	if _, err = g.Play(cmd.Context()); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			app.logger.Warn("input ended before the case was closed", errors.SlogError(err))
		} else {
			app.logger.Error("game failed", errors.SlogError(err))
		}
		return err
	}
	return nil
}
