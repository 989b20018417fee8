package cli

import (
	"database/sql"
	"log/slog"

	"github.com/alexanderramin/juju/internal/config"
	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/repository"
	"github.com/alexanderramin/juju/internal/service"
)

// Wire builds every service on top of an open database and stores them in
// app. A nil logger disables use-case events.
func Wire(app *App, database *sql.DB, cfg *config.Config, logger *slog.Logger) {
	projectRepo := repository.NewSQLiteProjectRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	activityRepo := repository.NewSQLiteActivityTypeRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	projects := service.NewProjectService(projectRepo, settingsRepo, uow, observer)
	sessions := service.NewSessionService(sessionRepo, projectRepo, activityRepo, cfg.Weekday(), observer)

	app.Config = cfg
	app.Projects = projects
	app.Sessions = sessions
	app.Activities = service.NewActivityService(activityRepo)
	app.Reports = service.NewReportService(sessions, activityRepo)
	app.Import = service.NewImportService(sessions, uow, observer)
	app.Deleter = service.NewProjectDeleter(sessionRepo, projects, settingsRepo, observer)
}
