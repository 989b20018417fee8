package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/service"
	"github.com/alexanderramin/juju/internal/timeutil"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"s"},
		Short:   "Log and browse work sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionDaysCmd(app),
		newSessionUpdateCmd(app),
		newSessionOverlapsCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var projectRef, activityRef, start, end, notes, moodStr, milestone string
	var minutes int
	date := newDateValue(app.now)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a work session",
		Example: `  juju session log --start 09:00 --end 10:30 --notes "chapter 2"
  juju session log -p Writing --date yesterday --start 23:00 --end 01:15
  juju session log --start 14:00 --minutes 45 --mood 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			project, err := resolveProjectOrSelected(ctx, app, projectRef)
			if err != nil {
				return err
			}
			mood, err := parseMood(moodStr)
			if err != nil {
				return err
			}
			if (end == "") == (minutes <= 0) {
				return fmt.Errorf("give exactly one of --end or --minutes")
			}
			day := date.Time()
			if day.IsZero() {
				day = timeutil.StartOfDay(app.now())
			}
			if minutes >= 24*60 {
				return fmt.Errorf("--minutes must be under 24h, got %d", minutes)
			}
			if end == "" {
				if !timeutil.ValidClock(start) {
					return fmt.Errorf("invalid --start %q (expected HH:mm)", start)
				}
				end = timeutil.FormatClockSeconds(timeutil.Combine(day, start).Add(time.Duration(minutes) * time.Minute))
			}

			req := service.LogSessionRequest{
				ProjectID:  project.ID,
				Date:       day,
				StartClock: start,
				EndClock:   end,
				Notes:      notes,
				Mood:       mood,
				Milestone:  milestone,
			}
			if activityRef != "" {
				a, err := app.Activities.Resolve(ctx, activityRef)
				if err != nil {
					return err
				}
				req.ActivityTypeID = a.ID
			}

			s, err := app.Sessions.Log(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Logged %s on %s, %s %s-%s (%s)\n",
				formatter.FormatMinutes(s.DurationMinutes()), project.Name,
				timeutil.FormatCalendarDate(s.StartDate),
				timeutil.FormatClock(s.StartDate), timeutil.FormatClock(s.EndDate),
				formatter.TruncID(s.ID))

			overlaps, err := app.Sessions.Overlaps(ctx, s.ID)
			if err != nil {
				return err
			}
			if len(overlaps) > 0 {
				fmt.Fprintf(out, "%s overlaps %d existing sessions (see `juju session overlaps %s`)\n",
					formatter.StyleYellow.Render("warning:"), len(overlaps), s.ID[:8])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project id, name or id prefix (default: selected project)")
	cmd.Flags().StringVarP(&activityRef, "activity", "a", "", "Activity type id or name")
	cmd.Flags().Var(date, "date", "Day the session started (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&start, "start", "", "Start clock, HH:mm")
	cmd.Flags().StringVar(&end, "end", "", "End clock, HH:mm; earlier than --start means the next day")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration in minutes, instead of --end")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	cmd.Flags().StringVar(&moodStr, "mood", "", "Mood score 0-10")
	cmd.Flags().StringVar(&milestone, "milestone", "", "Milestone reached in this session")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var limit int
	var q *queryFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query, err := q.build(cmd, app)
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.List(ctx, query)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[:limit]
			}
			names, err := loadNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Sessions", formatter.FormatSessionTable(sessions, names)))
			return nil
		},
	}

	q = addQueryFlags(cmd, app, true)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N sessions")

	return cmd
}

func newSessionDaysCmd(app *App) *cobra.Command {
	var q *queryFlags

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Show sessions grouped by day, with daily totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query, err := q.build(cmd, app)
			if err != nil {
				return err
			}
			groups, err := app.Reports.Days(ctx, query)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}
			names, err := loadNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDays(groups, names, app.now()))
			return nil
		},
	}

	q = addQueryFlags(cmd, app, false)

	return cmd
}

func newSessionUpdateCmd(app *App) *cobra.Command {
	var projectRef, notes, moodStr, milestone string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit the project, notes, mood or milestone of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveSession(ctx, app, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("project") {
				p, err := app.Projects.Resolve(ctx, projectRef)
				if err != nil {
					return err
				}
				s = s.ReassignedTo(p)
			}
			if cmd.Flags().Changed("notes") {
				s.Notes = notes
			}
			if cmd.Flags().Changed("mood") {
				if s.Mood, err = parseMood(moodStr); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("milestone") {
				s.MilestoneText = strings.TrimSpace(milestone)
			}
			if err := app.Sessions.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated session %s\n", formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Move the session to this project")
	cmd.Flags().StringVar(&notes, "notes", "", "Replace the notes")
	cmd.Flags().StringVar(&moodStr, "mood", "", "Mood score 0-10, empty to clear")
	cmd.Flags().StringVar(&milestone, "milestone", "", "Milestone text, empty to clear")

	return cmd
}

func newSessionOverlapsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps [ID]",
		Short: "Find sessions whose time ranges intersect",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			names, err := loadNames(ctx, app)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				s, err := resolveSession(ctx, app, args[0])
				if err != nil {
					return err
				}
				overlaps, err := app.Sessions.Overlaps(ctx, s.ID)
				if err != nil {
					return err
				}
				if len(overlaps) == 0 {
					fmt.Fprintln(out, "No overlapping sessions.")
					return nil
				}
				fmt.Fprint(out, formatter.FormatSessionTable(analytics.SortByStartDesc(overlaps), names))
				return nil
			}

			all, err := app.Sessions.ListAll(ctx)
			if err != nil {
				return err
			}
			var pairs [][2]*domain.Session
			for i, s := range all {
				for _, o := range analytics.Overlapping(all[i+1:], s) {
					pairs = append(pairs, [2]*domain.Session{s, o})
				}
			}
			if len(pairs) == 0 {
				fmt.Fprintln(out, "No overlapping sessions.")
				return nil
			}
			for _, p := range pairs {
				fmt.Fprintf(out, "%s %s %s-%s  overlaps  %s %s %s-%s\n",
					formatter.TruncID(p[0].ID), timeutil.FormatCalendarDate(p[0].StartDate),
					timeutil.FormatClock(p[0].StartDate), timeutil.FormatClock(p[0].EndDate),
					formatter.TruncID(p[1].ID), timeutil.FormatCalendarDate(p[1].StartDate),
					timeutil.FormatClock(p[1].StartDate), timeutil.FormatClock(p[1].EndDate))
			}
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d overlapping pairs", len(pairs))))
			return nil
		},
	}
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveSession(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sessions.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", s.ID)
			return nil
		},
	}
}

// resolveSession finds a session by full id or a unique id prefix.
func resolveSession(ctx context.Context, app *App, ref string) (*domain.Session, error) {
	if s, err := app.Sessions.GetByID(ctx, ref); err == nil {
		return s, nil
	}
	all, err := app.Sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Session
	for _, s := range all {
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("session not found: %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("session ID prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}
