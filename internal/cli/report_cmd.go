package cli

import (
	"fmt"

	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"r"},
		Short:   "Summaries and charts of logged time",
	}

	cmd.AddCommand(
		newReportSummaryCmd(app),
		newReportDailyCmd(app),
		newReportWeeklyCmd(app),
		newReportPieCmd(app),
		newReportYearlyCmd(app),
		newReportActivityCmd(app),
	)

	return cmd
}

// reportCmd builds a report subcommand sharing the query flags. render gets
// the resolved query and the display names.
func reportCmd(app *App, use, short string, render func(cmd *cobra.Command, q *queryFlags, names formatter.Names) (string, error)) *cobra.Command {
	var q *queryFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := loadNames(cmd.Context(), app)
			if err != nil {
				return err
			}
			out, err := render(cmd, q, names)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	q = addQueryFlags(cmd, app, false)
	return cmd
}

func newReportSummaryCmd(app *App) *cobra.Command {
	return reportCmd(app, "summary", "Headline totals", func(cmd *cobra.Command, q *queryFlags, names formatter.Names) (string, error) {
		query, err := q.build(cmd, app)
		if err != nil {
			return "", err
		}
		s, err := app.Reports.Summary(cmd.Context(), query)
		if err != nil {
			return "", err
		}
		return formatter.RenderBox("Summary", formatter.FormatSummary(s, names)), nil
	})
}

func newReportDailyCmd(app *App) *cobra.Command {
	return reportCmd(app, "daily", "Hours per day, with empty days filled", func(cmd *cobra.Command, q *queryFlags, names formatter.Names) (string, error) {
		query, err := q.build(cmd, app)
		if err != nil {
			return "", err
		}
		d, err := app.Reports.Daily(cmd.Context(), query)
		if err != nil {
			return "", err
		}
		return formatter.FormatDaily(d, names), nil
	})
}

func newReportWeeklyCmd(app *App) *cobra.Command {
	return reportCmd(app, "weekly", "Cumulative hours per project by ISO week", func(cmd *cobra.Command, q *queryFlags, names formatter.Names) (string, error) {
		query, err := q.build(cmd, app)
		if err != nil {
			return "", err
		}
		w, err := app.Reports.Weekly(cmd.Context(), query)
		if err != nil {
			return "", err
		}
		return formatter.FormatWeekly(w, names), nil
	})
}

func newReportPieCmd(app *App) *cobra.Command {
	return reportCmd(app, "pie", "Share of hours per project", func(cmd *cobra.Command, q *queryFlags, names formatter.Names) (string, error) {
		query, err := q.build(cmd, app)
		if err != nil {
			return "", err
		}
		p, err := app.Reports.Pie(cmd.Context(), query)
		if err != nil {
			return "", err
		}
		return formatter.FormatPie(p, names), nil
	})
}

func newReportActivityCmd(app *App) *cobra.Command {
	return reportCmd(app, "activity", "Hours per activity type", func(cmd *cobra.Command, q *queryFlags, names formatter.Names) (string, error) {
		query, err := q.build(cmd, app)
		if err != nil {
			return "", err
		}
		hours, err := app.Reports.ByActivity(cmd.Context(), query)
		if err != nil {
			return "", err
		}
		rows := make([]formatter.ActivityRow, 0, len(hours))
		for _, h := range hours {
			rows = append(rows, formatter.ActivityRow{Name: h.Name, Emoji: h.Emoji, Hours: h.Hours})
		}
		return formatter.FormatActivityBreakdown(rows), nil
	})
}

func newReportYearlyCmd(app *App) *cobra.Command {
	var year int
	var projectRef string

	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Hours per project for each month of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID := ""
			if projectRef != "" {
				p, err := app.Projects.Resolve(ctx, projectRef)
				if err != nil {
					return err
				}
				projectID = p.ID
			}
			if year == 0 {
				year = app.now().Year()
			}
			m, err := app.Reports.Yearly(ctx, year, projectID)
			if err != nil {
				return err
			}
			names, err := loadNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Header(fmt.Sprintf("%d", m.Year))+"\n"+formatter.FormatYearly(m, names))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Calendar year (default: current)")
	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Only this project")

	return cmd
}
