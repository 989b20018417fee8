package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectArchiveCmd(app, true),
		newProjectArchiveCmd(app, false),
		newProjectSelectCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var color string
	var order int
	var selectIt bool

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := &domain.Project{Name: args[0], Color: color, Order: order}
			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}
			if selectIt {
				if err := app.Projects.Select(ctx, p.ID); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Display color as hex, e.g. #8ec07c")
	cmd.Flags().IntVar(&order, "order", 0, "Position in the project list (default: last)")
	cmd.Flags().BoolVar(&selectIt, "select", false, "Select the new project")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projects, err := app.Projects.List(ctx, all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			sessions, err := app.Sessions.ListAll(ctx)
			if err != nil {
				return err
			}

			switch sortBy {
			case "recent":
				projects = analytics.SortProjectsByRecent(projects, sessions)
			case "order", "":
				projects = analytics.SortProjectsByOrder(projects)
			default:
				return fmt.Errorf("unknown sort %q (order|recent)", sortBy)
			}

			selectedID := ""
			if sel, err := app.Projects.Selected(ctx); err != nil {
				return err
			} else if sel != nil {
				selectedID = sel.ID
			}
			minutes := make(map[string]int)
			for id, list := range analytics.GroupByProject(sessions) {
				minutes[id] = analytics.TotalMinutes(list)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(formatter.ProjectListData{
				Projects:   projects,
				SelectedID: selectedID,
				LastActive: analytics.LastSessionDates(sessions),
				Minutes:    minutes,
				Now:        app.now(),
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")
	cmd.Flags().StringVar(&sortBy, "sort", "order", "Order: order|recent")

	return cmd
}

// newProjectUpdateCmd edits a project in place and rewrites the whole list,
// so a changed --order moves the project and renumbers the others.
func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, color string
	var order int

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Rename, recolor or reorder a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			projects, err := app.Projects.List(ctx, true)
			if err != nil {
				return err
			}
			projects = analytics.SortProjectsByOrder(projects)

			var target *domain.Project
			rest := make([]*domain.Project, 0, len(projects))
			for _, q := range projects {
				if q.ID == p.ID {
					target = q
					continue
				}
				rest = append(rest, q)
			}
			if target == nil {
				return fmt.Errorf("project %s disappeared while updating", p.ID)
			}

			if cmd.Flags().Changed("name") {
				name = strings.TrimSpace(name)
				for _, q := range rest {
					if strings.EqualFold(q.Name, name) {
						return fmt.Errorf("project %q: %w", name, service.ErrDuplicateName)
					}
				}
				target.Name = name
			}
			if cmd.Flags().Changed("color") {
				target.Color = color
			}
			if err := target.Validate(); err != nil {
				return err
			}

			pos := len(rest)
			for i, q := range projects {
				if q.ID == target.ID {
					pos = i
				}
			}
			if cmd.Flags().Changed("order") {
				pos = order
			}
			if pos < 0 {
				pos = 0
			}
			if pos > len(rest) {
				pos = len(rest)
			}

			list := make([]*domain.Project, 0, len(projects))
			list = append(list, rest[:pos]...)
			list = append(list, target)
			list = append(list, rest[pos:]...)
			for i, q := range list {
				q.Order = i
			}
			if err := app.Projects.SaveAll(ctx, list); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s (%s)\n", target.Name, target.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	cmd.Flags().StringVar(&color, "color", "", "Display color as hex")
	cmd.Flags().IntVar(&order, "order", 0, "New position, 0 is first")

	return cmd
}

func newProjectArchiveCmd(app *App, archive bool) *cobra.Command {
	use, short, verb := "archive REF", "Archive a project", "Archived"
	if !archive {
		use, short, verb = "unarchive REF", "Restore an archived project", "Unarchived"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.SetArchived(ctx, p.ID, archive); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s project %s\n", verb, p.Name)
			return nil
		},
	}
}

func newProjectSelectCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "select [REF]",
		Short: "Select the default project for session commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if clear {
				if err := app.Projects.Select(ctx, ""); err != nil {
					return err
				}
				fmt.Fprintln(out, "Cleared project selection")
				return nil
			}
			if len(args) == 0 {
				p, err := app.Projects.Selected(ctx)
				if err != nil {
					return err
				}
				if p == nil {
					fmt.Fprintln(out, "No project selected.")
					return nil
				}
				fmt.Fprintf(out, "Selected project: %s (%s)\n", p.Name, p.DisplayID())
				return nil
			}

			p, err := app.Projects.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Select(ctx, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(out, "Selected project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the selection")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var targetRef string
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a project, moving its sessions to another project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			p, err := app.Projects.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			req := service.DeleteProjectRequest{ProjectID: p.ID}
			if targetRef != "" {
				target, err := app.Projects.Resolve(ctx, targetRef)
				if err != nil {
					return fmt.Errorf("resolving --target: %w", err)
				}
				req.TargetID = target.ID
			}

			if app.interactive() && !yes {
				affected, err := app.Deleter.AffectedSessions(ctx, p.ID)
				if err != nil {
					return err
				}
				if len(affected) > 0 && req.TargetID == "" {
					targets, err := app.Deleter.EligibleTargets(ctx, p.ID)
					if err != nil {
						return err
					}
					if len(targets) > 1 {
						if err := targetPickerForm(p, len(affected), targets, &req.TargetID).Run(); err != nil {
							return promptErr(err)
						}
					}
				}
				confirmed := false
				title := fmt.Sprintf("Remove project %q?", p.Name)
				if err := confirmForm(title, &confirmed).Run(); err != nil {
					return promptErr(err)
				}
				if !confirmed {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			result, err := app.Deleter.DeleteProject(ctx, req)
			if err != nil {
				if errors.Is(err, service.ErrNoMigrationTarget) {
					return fmt.Errorf("%w: create or unarchive another project first", err)
				}
				return err
			}

			if result.State == domain.DeletionNoSessions || result.TargetID == "" {
				fmt.Fprintf(out, "Removed project %s\n", p.Name)
			} else {
				targetName := result.TargetID
				if t, err := app.Projects.GetByID(ctx, result.TargetID); err == nil {
					targetName = t.Name
				}
				fmt.Fprintf(out, "Removed project %s, moved %d sessions to %s\n", p.Name, result.MigratedCount, targetName)
			}
			if n := len(result.FailedSessionIDs); n > 0 {
				fmt.Fprintf(out, "%s %d sessions could not be moved and still reference the removed project:\n",
					formatter.StyleYellow.Render("warning:"), n)
				for _, id := range result.FailedSessionIDs {
					fmt.Fprintf(out, "  %s\n", id)
				}
				fmt.Fprintln(out, "Run `juju check` to list them.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&targetRef, "target", "", "Project that receives the sessions (default: first active project)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip prompts")

	return cmd
}

// promptErr maps an aborted prompt to a plain cancellation error.
func promptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errors.New("cancelled")
	}
	return err
}
