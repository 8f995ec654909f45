// Package cli wires configuration, the roster, draw history and the TUI
// behind the jaskraffle command.
package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/jaskraffle/internal/config"
	"github.com/jask/jaskraffle/internal/database"
	"github.com/jask/jaskraffle/internal/database/repository"
	"github.com/jask/jaskraffle/internal/raffle"
	"github.com/jask/jaskraffle/internal/roster"
	"github.com/jask/jaskraffle/internal/service"
	"github.com/jask/jaskraffle/internal/tui"
)

type rootFlags struct {
	configPath   string
	participants string
	rounds       int
	logFile      string
	noDB         bool
}

func Execute() error {
	return NewRoot().Execute()
}

var runProgram = func(m tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func NewRoot() *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:           "jaskraffle",
		Short:         "Draw raffle winners in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, f)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default $HOME/.config/jaskraffle/config.toml)")
	root.Flags().StringVarP(&f.participants, "participants-file", "p", "", "roster file (.txt, .csv, .yaml, .toml)")
	root.Flags().IntVar(&f.rounds, "rounds", 0, "ticks before a winner is declared")
	root.Flags().StringVar(&f.logFile, "log-file", "", "write debug logs to this file")
	root.Flags().BoolVar(&f.noDB, "no-db", false, "do not record draws to the history database")

	root.AddCommand(
		historyCmd(&f),
		rosterCmd(&f),
		configCmd(&f),
	)
	return root
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// pickerConfig resolves the config file and applies flag overrides.
func pickerConfig(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.participants != "" {
		cfg.Roster.Path = f.participants
	}
	if cmd.Flags().Changed("rounds") {
		cfg.Spin.Rounds = f.rounds
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.noDB {
		cfg.Database.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runPicker(cmd *cobra.Command, f rootFlags) error {
	ctx := cmd.Context()
	cfg, err := pickerConfig(cmd, f)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	res, err := roster.Load(cfg.Roster.Path, roster.Options{SimilarityThreshold: cfg.Roster.SimilarityThreshold})
	if err != nil {
		return err
	}
	warnings := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		log.Printf("warn: %s", w)
		warnings = append(warnings, w.String())
	}
	log.Printf("loaded %d participants from %s", len(res.Names), res.Path)

	opts := tui.Options{
		TickInterval: cfg.Spin.TickInterval,
		RosterSource: res.Path,
		Warnings:     warnings,
	}
	if cfg.Database.Enabled {
		db, err := database.OpenMigrated(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}
		defer db.Close()

		rec, err := service.Begin(ctx, repository.NewDrawRepo(db), repository.NewSessionRepo(db), res.Path, len(res.Names), cfg.Spin.Rounds)
		if err != nil {
			return err
		}
		log.Printf("session %s", rec.SessionID)
		opts.Recorder = rec
	}

	state := raffle.NewState(res.Names, raffle.Options{Rounds: cfg.Spin.Rounds})
	app := tui.New(ctx, state, opts)

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	return runProgram(app, progOpts...)
}

// setupLogging sends log output to file, or discards it so nothing is
// written over the TUI.
func setupLogging(file string) (func(), error) {
	if file == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	fh, err := tea.LogToFile(file, "jaskraffle")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = fh.Close() }, nil
}
