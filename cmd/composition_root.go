package cmd

import (
	"database/sql"
	"log/slog"

	"delivery/internal/adapters/in/http"
	"delivery/internal/adapters/out/postgres"
	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/application/usecases/queries"
	"delivery/internal/core/ports"
	"delivery/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into application handlers. All
// construction happens here so the rest of the code depends on abstractions
// only.
type CompositionRoot struct {
	gormDB     *gorm.DB
	sqlDB      *sql.DB
	geoClient  ports.GeoClient
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot assembles the root from already opened connections.
// The gorm session serves the transactional write side, the plain sql
// connection the read side, and geoClient resolves order addresses.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	sqlDB *sql.DB,
	geoClient ports.GeoClient,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		sqlDB:      sqlDB,
		geoClient:  geoClient,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geoClient)
}

func (c *CompositionRoot) CreateMoveCouriersCommandHandler() commands.MoveCouriersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveCouriersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBusyCouriersQueryHandler() queries.GetBusyCouriersQueryHandler {
	return queries.NewGetBusyCouriersQueryHandler(c.sqlDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP adapter over the application handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateCourierCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateMoveCouriersCommandHandler(),
		c.CreateGetAllCouriersQueryHandler(),
		c.CreateGetBusyCouriersQueryHandler(),
		c.CreateGetUncompletedOrdersQueryHandler(),
	)
}

// CreateJobManager builds the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMoveCouriersCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
