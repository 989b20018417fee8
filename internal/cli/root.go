package cli

import (
	"time"

	"github.com/alexanderramin/juju/internal/config"
	"github.com/alexanderramin/juju/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects   service.ProjectService
	Sessions   service.SessionService
	Activities service.ActivityService
	Reports    service.ReportService
	Import     service.ImportService
	Deleter    *service.ProjectDeleter
	Config     *config.Config

	// ConfigFile is the --config flag value.
	ConfigFile string
	// Setup wires the services after flags are parsed. Tests leave it nil
	// and pass a prebuilt App.
	Setup func(app *App) error
	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "juju" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "juju",
		Short:         "Track work sessions per project and chart where the time goes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(app)
		},
	}
	root.PersistentFlags().StringVar(&app.ConfigFile, "config", "", "Config file (default ~/.juju/config.yaml)")

	root.AddCommand(
		newProjectCmd(app),
		newSessionCmd(app),
		newActivityCmd(app),
		newReportCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newCheckCmd(app),
		newConfigCmd(app),
	)

	return root
}
