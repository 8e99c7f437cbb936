package cmd

import (
	"log/slog"

	intelegram "bladeshop/internal/adapters/in/telegram"
	"bladeshop/internal/adapters/out/inmemory"
	"bladeshop/internal/adapters/out/postgres"
	outtelegram "bladeshop/internal/adapters/out/telegram"
	"bladeshop/internal/core/application/usecases/commands"
	"bladeshop/internal/core/application/usecases/queries"
	"bladeshop/internal/core/domain/services"
	"bladeshop/internal/core/ports"
	"bladeshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	bot      outtelegram.Sender
	logger   *slog.Logger
	sessions ports.SessionStore
	policy   *services.AccessPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, bot outtelegram.Sender, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		bot:        bot,
		logger:     logger,
		sessions:   inmemory.NewSessionStore(),
		policy:     services.NewAccessPolicy(config.AdminIDs, config.OperatorIDs),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.CreateNotifier())
}

func (c *CompositionRoot) CreateCycleOrderStatusCommandHandler() commands.CycleOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCycleOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotifier() ports.Notifier {
	return outtelegram.NewOperatorNotifier(c.bot, c.config.OperatorIDs, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.config.SessionTTL, c.logger)
}

func (c *CompositionRoot) CreateDispatcher(bot intelegram.Bot) *intelegram.Dispatcher {
	return intelegram.NewDispatcher(
		bot,
		c.policy,
		c.sessions,
		c.CreateCreateOrderCommandHandler(),
		c.CreateCycleOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateExportOrdersQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
