package cli

import (
	"fmt"

	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activity types",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityArchiveCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var emoji string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create an activity type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.Create(cmd.Context(), args[0], emoji)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created activity %s (%s)\n", a.Name, formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&emoji, "emoji", "", "Emoji shown next to the name")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activity types",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity types found.")
				return nil
			}
			rows := make([][]string, 0, len(activities))
			for _, a := range activities {
				name := a.Name
				if a.Archived {
					name = formatter.Dim(a.Name + " (archived)")
				}
				rows = append(rows, []string{formatter.TruncID(a.ID), a.Emoji, name})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "", "NAME"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived activity types")

	return cmd
}

func newActivityArchiveCmd(app *App) *cobra.Command {
	var restore bool

	cmd := &cobra.Command{
		Use:   "archive REF",
		Short: "Hide an activity type from new sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := app.Activities.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.SetArchived(ctx, a.ID, !restore); err != nil {
				return err
			}
			verb := "Archived"
			if restore {
				verb = "Restored"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s activity %s\n", verb, a.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&restore, "restore", false, "Unarchive instead")

	return cmd
}
