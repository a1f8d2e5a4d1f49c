package cmd

import (
	"log/slog"

	"waybill/internal/adapters/out/notifier"
	"waybill/internal/adapters/out/postgres"
	"waybill/internal/core/application/usecases/commands"
	"waybill/internal/core/application/usecases/queries"
	"waybill/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWaybillCommandHandler() commands.CreateWaybillCommandHandler {
	var f commands.WaybillUoWFactory = FuncWaybillUoWFactory(func() commands.WaybillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWaybillCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferStatusCommandHandler() commands.TransferStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferStatusCommandHandler(f, notifier.NewSlogTransitionPublisher(c.logger))
}

func (c *CompositionRoot) CreateCanTransferQueryHandler() queries.CanTransferQueryHandler {
	return queries.NewCanTransferQueryHandler()
}

func (c *CompositionRoot) CreateGetWaybillQueryHandler() queries.GetWaybillQueryHandler {
	return queries.NewGetWaybillQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransitionHistoryQueryHandler() queries.GetTransitionHistoryQueryHandler {
	return queries.NewGetTransitionHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedWaybillsQueryHandler() queries.GetUncompletedWaybillsQueryHandler {
	return queries.NewGetUncompletedWaybillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetUncompletedWaybillsQueryHandler(), c.logger)
}

type FuncWaybillUoWFactory func() commands.WaybillUoW

func (f FuncWaybillUoWFactory) Create() commands.WaybillUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
