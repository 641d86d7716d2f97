package cmd

import (
	"fmt"

	"cuboids/api"
	httpin "cuboids/internal/adapters/in/http"
	"cuboids/internal/adapters/out/postgres"
	"cuboids/internal/core/application/usecases/commands"
	"cuboids/internal/core/application/usecases/queries"
	"cuboids/internal/core/domain/services"
	"cuboids/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.CapacityPolicy
	logger     zerolog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	mode, err := services.ParseUpdateMode(config.CapacityUpdateMode)
	if err != nil {
		return nil, fmt.Errorf("invalid capacity update mode: %w", err)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewCapacityPolicy(mode),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateCuboidCommandHandler() commands.CreateCuboidCommandHandler {
	return commands.NewCreateCuboidCommandHandler(c.uows(), c.policy)
}

func (c *CompositionRoot) CreateUpdateCuboidCommandHandler() commands.UpdateCuboidCommandHandler {
	return commands.NewUpdateCuboidCommandHandler(c.uows(), c.policy)
}

func (c *CompositionRoot) CreateDeleteCuboidCommandHandler() commands.DeleteCuboidCommandHandler {
	var f commands.CuboidUoWFactory = FuncCuboidUoWFactory(func() commands.CuboidUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCuboidCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBagCommandHandler() commands.CreateBagCommandHandler {
	return commands.NewCreateBagCommandHandler(c.bagUoWs())
}

func (c *CompositionRoot) CreateUpdateBagCommandHandler() commands.UpdateBagCommandHandler {
	return commands.NewUpdateBagCommandHandler(c.bagUoWs())
}

func (c *CompositionRoot) CreateDeleteBagCommandHandler() commands.DeleteBagCommandHandler {
	return commands.NewDeleteBagCommandHandler(c.uows())
}

func (c *CompositionRoot) CreateGetCuboidsQueryHandler() queries.GetCuboidsQueryHandler {
	return queries.NewGetCuboidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCuboidQueryHandler() queries.GetCuboidQueryHandler {
	return queries.NewGetCuboidQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBagsQueryHandler() queries.GetBagsQueryHandler {
	return queries.NewGetBagsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBagQueryHandler() queries.GetBagQueryHandler {
	return queries.NewGetBagQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindOverfilledBagsQueryHandler() queries.FindOverfilledBagsQueryHandler {
	return queries.NewFindOverfilledBagsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateCuboid: c.CreateCreateCuboidCommandHandler(),
		UpdateCuboid: c.CreateUpdateCuboidCommandHandler(),
		DeleteCuboid: c.CreateDeleteCuboidCommandHandler(),
		CreateBag:    c.CreateCreateBagCommandHandler(),
		UpdateBag:    c.CreateUpdateBagCommandHandler(),
		DeleteBag:    c.CreateDeleteBagCommandHandler(),
		GetCuboids:   c.CreateGetCuboidsQueryHandler(),
		GetCuboid:    c.CreateGetCuboidQueryHandler(),
		GetBags:      c.CreateGetBagsQueryHandler(),
		GetBag:       c.CreateGetBagQueryHandler(),
	})
}

// CreateRouter loads the OpenAPI document and builds the echo instance.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(c.CreateServer(), doc, c.logger.With().Str("component", "http").Logger())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFindOverfilledBagsQueryHandler(), c.config.AuditSchedule, c.logger)
}

func (c *CompositionRoot) uows() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bagUoWs() commands.BagUoWFactory {
	return FuncBagUoWFactory(func() commands.BagUoW {
		return c.uowFactory.Create()
	})
}

type FuncBagUoWFactory func() commands.BagUoW

func (f FuncBagUoWFactory) Create() commands.BagUoW {
	return f()
}

type FuncCuboidUoWFactory func() commands.CuboidUoW

func (f FuncCuboidUoWFactory) Create() commands.CuboidUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
