//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"driver-service/internal/handlers/rest/location_post"
	"driver-service/internal/handlers/rest/profile_get"
	"driver-service/internal/handlers/rest/run_stops_get"
	"driver-service/internal/handlers/rest/runs_get"
	"driver-service/internal/handlers/rest/session_delete"
	"driver-service/internal/handlers/rest/session_post"
	"driver-service/internal/handlers/rest/stop_status_post"
	"driver-service/internal/handlers/tasks/session_cleanup"
	"driver-service/internal/pkg/config"
	"driver-service/internal/pkg/factory/run_status"
	"driver-service/internal/pkg/middlewares/auth"

	driverRepo "driver-service/internal/repository/driver"
	runRepo "driver-service/internal/repository/run"
	sessionRepo "driver-service/internal/repository/session"
	stopRepo "driver-service/internal/repository/stop"
	driverService "driver-service/internal/service/driver"
	locationService "driver-service/internal/service/location"
	runService "driver-service/internal/service/run"
	sessionService "driver-service/internal/service/session"
	stopService "driver-service/internal/service/stop"

	"driver-service/pkg/background"
	"driver-service/pkg/logger"
	"driver-service/pkg/querier"
	"driver-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	SessionTTL      time.Duration
)

type Application struct {
	ServiceSession    ServiceSession
	ServiceDriver     ServiceDriver
	ServiceRun        ServiceRun
	ServiceStop       ServiceStop
	ServiceLocation   ServiceLocation
	BackgroundWorkers *background.Worker
}

type ServiceSession interface {
	session_post.Service
	session_delete.Service
	auth.SessionValidator
}

type ServiceDriver interface {
	profile_get.Service
}

type ServiceRun interface {
	runs_get.Service
	run_stops_get.Service
}

type ServiceStop interface {
	stop_status_post.Service
}

type ServiceLocation interface {
	location_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideSessionTTL,

		provideDriverRepository,
		provideSessionRepository,
		provideRunRepository,
		provideStopRepository,

		provideServiceSession,
		provideServiceDriver,
		provideServiceRun,
		provideServiceStop,
		provideServiceLocation,
		run_status.New,

		provideSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSession), new(*sessionService.Session)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceRun), new(*runService.Run)),
		wire.Bind(new(ServiceStop), new(*stopService.Stop)),
		wire.Bind(new(ServiceLocation), new(*locationService.Location)),

		wire.Bind(new(sessionService.Repository), new(*sessionRepo.Repository)),
		wire.Bind(new(sessionService.DriverProvider), new(*driverRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(runService.Repository), new(*runRepo.Repository)),
		wire.Bind(new(stopService.Repository), new(*stopRepo.Repository)),
		wire.Bind(new(locationService.Repository), new(*driverRepo.Repository)),

		wire.Bind(new(stopService.RunStatusFactory), new(*run_status.RunStatusFactory)),
		wire.Bind(new(stopService.TxManager), new(*tx.Manager)),

		wire.Bind(new(session_cleanup.Service), new(*sessionService.Session)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideSessionRepository(querier *querier.Querier) *sessionRepo.Repository {
	return sessionRepo.New(querier)
}

func provideRunRepository(querier *querier.Querier) *runRepo.Repository {
	return runRepo.New(querier)
}

func provideStopRepository(querier *querier.Querier) *stopRepo.Repository {
	return stopRepo.New(querier)
}

func provideServiceSession(
	repository sessionService.Repository,
	drivers sessionService.DriverProvider,
	ttl SessionTTL,
) *sessionService.Session {
	return sessionService.New(repository, drivers, time.Duration(ttl))
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceRun(repository runService.Repository) *runService.Run {
	return runService.New(repository)
}

func provideServiceStop(
	repository stopService.Repository,
	statusFactory stopService.RunStatusFactory,
	txManager stopService.TxManager,
) *stopService.Stop {
	return stopService.New(repository, statusFactory, txManager)
}

func provideServiceLocation(repository locationService.Repository) *locationService.Location {
	return locationService.New(repository)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.SessionsCleanupInterval)
}

func provideSessionTTL(cfg *config.Config) SessionTTL {
	return SessionTTL(cfg.Auth.SessionTTL)
}

func provideSessionCleanupTask(
	log logger.Logger,
	sessionService session_cleanup.Service,
	interval CleanupInterval,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, sessionService, time.Duration(interval))
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
