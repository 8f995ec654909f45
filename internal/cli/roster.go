package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/jaskraffle/internal/roster"
)

func rosterCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and convert roster files",
	}
	cmd.AddCommand(rosterCheckCmd(f), rosterConvertCmd())
	return cmd
}

func rosterCheckCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Load a roster and report near-duplicate names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.configPath)
			if err != nil {
				return err
			}
			res, err := roster.Load(args[0], roster.Options{SimilarityThreshold: cfg.Roster.SimilarityThreshold})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d participants in %s (%s)\n", len(res.Names), res.Path, res.Format)
			for _, w := range res.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			return nil
		},
	}
}

func rosterConvertCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a roster in the format of the output extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertRoster(args[0], args[1], force, cmd)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file")
	return cmd
}

func convertRoster(in, out string, force bool, cmd *cobra.Command) error {
	// no similarity check; convert copies names as they are
	res, err := roster.Load(in, roster.Options{SimilarityThreshold: -1})
	if err != nil {
		return err
	}
	format, err := roster.FormatFor(out)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	fh, err := os.OpenFile(out, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := roster.Write(fh, res.Names, format); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := fh.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d participants to %s (%s)\n", len(res.Names), out, format)
	return nil
}
