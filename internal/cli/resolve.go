package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/alexanderramin/juju/internal/domain"
)

// resolveProjectOrSelected resolves ref, falling back to the selected
// project when ref is empty.
func resolveProjectOrSelected(ctx context.Context, app *App, ref string) (*domain.Project, error) {
	if ref != "" {
		return app.Projects.Resolve(ctx, ref)
	}
	p, err := app.Projects.Selected(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no project given and none selected (use --project or `juju project select`)")
	}
	return p, nil
}

// loadNames builds the id to name lookups used by the formatters. Archived
// projects and activities are included so old sessions still render by name.
func loadNames(ctx context.Context, app *App) (formatter.Names, error) {
	names := formatter.Names{Projects: map[string]string{}, Activities: map[string]string{}}
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return names, err
	}
	for _, p := range projects {
		names.Projects[p.ID] = p.Name
	}
	activities, err := app.Activities.List(ctx, true)
	if err != nil {
		return names, err
	}
	for _, a := range activities {
		names.Activities[a.ID] = a.Name
	}
	return names, nil
}
