package cli

import (
	"fmt"

	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/alexanderramin/juju/internal/timeutil"
	"github.com/spf13/cobra"
)

// newCheckCmd reports sessions left pointing at a removed project, which a
// partially failed project removal can leave behind.
func newCheckCmd(app *App) *cobra.Command {
	var fixRef string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find sessions whose project no longer exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			orphans, err := app.Sessions.Orphans(ctx)
			if err != nil {
				return err
			}
			if len(orphans) == 0 {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔")+" all sessions belong to a project")
				return nil
			}

			if fixRef == "" {
				rows := make([][]string, 0, len(orphans))
				for _, s := range orphans {
					rows = append(rows, []string{
						formatter.TruncID(s.ID),
						timeutil.FormatCalendarDate(s.StartDate),
						formatter.FormatMinutes(s.DurationMinutes()),
						s.ProjectName,
						formatter.TruncID(s.ProjectID),
					})
				}
				fmt.Fprint(out, formatter.RenderTable([]string{"ID", "DATE", "DURATION", "WAS", "PROJECT ID"}, rows))
				fmt.Fprintf(out, "%d orphaned sessions. Reassign them with `juju check --fix PROJECT`.\n", len(orphans))
				return nil
			}

			target, err := app.Projects.Resolve(ctx, fixRef)
			if err != nil {
				return err
			}
			moved := 0
			for _, s := range orphans {
				if err := app.Sessions.Update(ctx, s.ReassignedTo(target)); err != nil {
					fmt.Fprintf(out, "%s session %s: %v\n", formatter.StyleRed.Render("failed:"), s.ID, err)
					continue
				}
				moved++
			}
			fmt.Fprintf(out, "Moved %d of %d orphaned sessions to %s\n", moved, len(orphans), target.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&fixRef, "fix", "", "Move orphaned sessions to this project")

	return cmd
}
