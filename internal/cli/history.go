package cli

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/jaskraffle/internal/database"
	"github.com/jask/jaskraffle/internal/database/repository"
	"github.com/jask/jaskraffle/internal/service"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89dceb")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func historyCmd(f *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past draws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openHistory(f)
			if err != nil {
				return err
			}
			defer db.Close()

			draws, err := repository.NewDrawRepo(db).Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if len(draws) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No draws recorded yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(draws))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of draws to show, 0 for all")
	cmd.AddCommand(historyClearCmd(f))
	return cmd
}

func historyClearCmd(f *rootFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded draws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear history without --yes")
			}
			db, err := openHistory(f)
			if err != nil {
				return err
			}
			defer db.Close()

			m := &service.MaintenanceService{DB: db}
			if err := m.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")
	return cmd
}

// errHistoryDisabled is returned instead of creating a database the config
// turned off.
var errHistoryDisabled = errors.New("history is disabled (database.enabled = false)")

func openHistory(f *rootFlags) (*sql.DB, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if !cfg.Database.Enabled {
		return nil, errHistoryDisabled
	}
	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return db, nil
}

func renderHistory(draws []repository.Draw) string {
	rows := make([][]string, 0, len(draws))
	for _, d := range draws {
		rows = append(rows, []string{
			d.DrawnAt.Local().Format("2006-01-02 15:04:05"),
			shortID(d.SessionID),
			fmt.Sprintf("%d", d.Round),
			d.Name,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers("Drawn at", "Session", "Round", "Winner").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	return t.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
