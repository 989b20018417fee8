package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Import sessions from CSV files",
		Long: `Import sessions from CSV files. Both the current header
(action, is_milestone) and the legacy milestone_text header are accepted.
Rows whose session id already exists are skipped, so re-importing a file is
safe. Projects named in the file are created when missing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			for _, path := range args {
				res, err := app.Import.ImportFile(ctx, path)
				if err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}
				line := fmt.Sprintf("%s: %d imported, %d already present", path, res.Imported, res.SkippedExisting)
				if res.Duplicates > 0 {
					line += fmt.Sprintf(", %d duplicate rows", res.Duplicates)
				}
				fmt.Fprintln(out, line)
				if len(res.ProjectsCreated) > 0 {
					fmt.Fprintf(out, "  created projects: %s\n", strings.Join(res.ProjectsCreated, ", "))
				}
				if res.Legacy {
					fmt.Fprintln(out, formatter.Dim("  legacy milestone_text format"))
				}
			}
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var q *queryFlags

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export sessions to CSV (use - for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := q.build(cmd, app)
			if err != nil {
				return err
			}

			if args[0] == "-" {
				_, err := app.Import.Export(cmd.Context(), cmd.OutOrStdout(), query)
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			n, err := app.Import.Export(cmd.Context(), f, query)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sessions to %s\n", n, args[0])
			return nil
		},
	}

	q = addQueryFlags(cmd, app, true)

	return cmd
}
