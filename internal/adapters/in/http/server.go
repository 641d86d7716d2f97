package http

import (
	"net/http"

	"cuboids/internal/core/application/usecases/commands"
	"cuboids/internal/core/application/usecases/queries"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/generated/servers"
	"cuboids/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCuboidHandler commands.CreateCuboidCommandHandler
	updateCuboidHandler commands.UpdateCuboidCommandHandler
	deleteCuboidHandler commands.DeleteCuboidCommandHandler
	createBagHandler    commands.CreateBagCommandHandler
	updateBagHandler    commands.UpdateBagCommandHandler
	deleteBagHandler    commands.DeleteBagCommandHandler

	// Query handlers
	getCuboidsHandler queries.GetCuboidsQueryHandler
	getCuboidHandler  queries.GetCuboidQueryHandler
	getBagsHandler    queries.GetBagsQueryHandler
	getBagHandler     queries.GetBagQueryHandler
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateCuboid commands.CreateCuboidCommandHandler
	UpdateCuboid commands.UpdateCuboidCommandHandler
	DeleteCuboid commands.DeleteCuboidCommandHandler
	CreateBag    commands.CreateBagCommandHandler
	UpdateBag    commands.UpdateBagCommandHandler
	DeleteBag    commands.DeleteBagCommandHandler

	GetCuboids queries.GetCuboidsQueryHandler
	GetCuboid  queries.GetCuboidQueryHandler
	GetBags    queries.GetBagsQueryHandler
	GetBag     queries.GetBagQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createCuboidHandler: h.CreateCuboid,
		updateCuboidHandler: h.UpdateCuboid,
		deleteCuboidHandler: h.DeleteCuboid,
		createBagHandler:    h.CreateBag,
		updateBagHandler:    h.UpdateBag,
		deleteBagHandler:    h.DeleteBag,
		getCuboidsHandler:   h.GetCuboids,
		getCuboidHandler:    h.GetCuboid,
		getBagsHandler:      h.GetBags,
		getBagHandler:       h.GetBag,
	}
}

// ListCuboids handles GET /cuboids - retrieves the requested cuboids with their bags.
func (s *Server) ListCuboids(ctx echo.Context, params servers.ListCuboidsParams) error {
	query, err := queries.NewGetCuboidsQuery(knownIDs(params.Ids))
	if err != nil {
		return err
	}

	cuboids, err := s.getCuboidsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Cuboid, len(cuboids))
	for i, c := range cuboids {
		response[i] = toCuboid(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCuboid handles POST /cuboids - places a new cuboid in a bag.
func (s *Server) CreateCuboid(ctx echo.Context) error {
	var body servers.CreateCuboidJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	bagID, err := pathID("bag", body.BagId)
	if err != nil {
		return err
	}

	dimensions, err := kernel.NewDimensions(body.Width, body.Height, body.Depth)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCuboidCommand(bagID, dimensions)
	if err != nil {
		return err
	}

	id, err := s.createCuboidHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	// Built from the committed values; a read after Commit could already
	// miss a cuboid deleted by a concurrent request.
	return ctx.JSON(http.StatusCreated, servers.Cuboid{
		Id:     id.Int64(),
		Width:  dimensions.Width(),
		Height: dimensions.Height(),
		Depth:  dimensions.Depth(),
		Volume: dimensions.Volume(),
		BagId:  bagID.Int64(),
	})
}

// GetCuboid handles GET /cuboids/{id}.
func (s *Server) GetCuboid(ctx echo.Context, id servers.Id) error {
	cuboidID, err := pathID("cuboid", id)
	if err != nil {
		return err
	}

	c, err := s.cuboid(ctx, cuboidID, false)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c)
}

// PatchCuboid handles PATCH /cuboids/{id} - resizes a cuboid.
func (s *Server) PatchCuboid(ctx echo.Context, id servers.Id) error {
	return s.resizeCuboid(ctx, id)
}

// PutCuboid handles PUT /cuboids/{id}. Same as PATCH: every dimension is required.
func (s *Server) PutCuboid(ctx echo.Context, id servers.Id) error {
	return s.resizeCuboid(ctx, id)
}

// DeleteCuboid handles DELETE /cuboids/{id}.
func (s *Server) DeleteCuboid(ctx echo.Context, id servers.Id) error {
	cuboidID, err := pathID("cuboid", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCuboidCommand(cuboidID)
	if err != nil {
		return err
	}

	if err := s.deleteCuboidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: MsgCuboidDeleted})
}

// ListBags handles GET /bags - all bags, or the requested ones.
func (s *Server) ListBags(ctx echo.Context, params servers.ListBagsParams) error {
	var ids []kernel.ID
	if params.Ids != nil {
		ids = knownIDs(params.Ids)
		if len(ids) == 0 {
			return ctx.JSON(http.StatusOK, []servers.Bag{})
		}
	}

	query, err := queries.NewGetBagsQuery(ids)
	if err != nil {
		return err
	}

	bags, err := s.getBagsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Bag, len(bags))
	for i, b := range bags {
		response[i] = toBagSummary(b)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBag handles POST /bags.
func (s *Server) CreateBag(ctx echo.Context) error {
	var body servers.CreateBagJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateBagCommand(body.Title, body.Volume)
	if err != nil {
		return err
	}

	id, err := s.createBagHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	created, err := s.bag(ctx, id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

// GetBag handles GET /bags/{id} - the bag with its cuboids.
func (s *Server) GetBag(ctx echo.Context, id servers.Id) error {
	bagID, err := pathID("bag", id)
	if err != nil {
		return err
	}

	b, err := s.bag(ctx, bagID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, b)
}

// PatchBag handles PATCH /bags/{id} - renames or resizes a bag.
func (s *Server) PatchBag(ctx echo.Context, id servers.Id) error {
	return s.updateBag(ctx, id)
}

// PutBag handles PUT /bags/{id}.
func (s *Server) PutBag(ctx echo.Context, id servers.Id) error {
	return s.updateBag(ctx, id)
}

// DeleteBag handles DELETE /bags/{id} - removes the bag and its cuboids.
func (s *Server) DeleteBag(ctx echo.Context, id servers.Id) error {
	bagID, err := pathID("bag", id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteBagCommand(bagID)
	if err != nil {
		return err
	}

	if err := s.deleteBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: MsgBagDeleted})
}

func (s *Server) resizeCuboid(ctx echo.Context, id servers.Id) error {
	cuboidID, err := pathID("cuboid", id)
	if err != nil {
		return err
	}

	var body servers.PatchCuboidJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	dimensions, err := kernel.NewDimensions(body.NewWidth, body.NewHeight, body.NewDepth)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCuboidCommand(cuboidID, dimensions)
	if err != nil {
		return err
	}

	if err := s.updateCuboidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	updated, err := s.cuboid(ctx, cuboidID, true)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (s *Server) updateBag(ctx echo.Context, id servers.Id) error {
	bagID, err := pathID("bag", id)
	if err != nil {
		return err
	}

	var body servers.PatchBagJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBagCommand(bagID, body.Title, body.Volume)
	if err != nil {
		return err
	}

	if err := s.updateBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	updated, err := s.bag(ctx, bagID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (s *Server) cuboid(ctx echo.Context, id kernel.ID, withBag bool) (servers.Cuboid, error) {
	query, err := queries.NewGetCuboidQuery(id, withBag)
	if err != nil {
		return servers.Cuboid{}, err
	}

	c, err := s.getCuboidHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return servers.Cuboid{}, err
	}

	return toCuboid(c), nil
}

func (s *Server) bag(ctx echo.Context, id kernel.ID) (servers.Bag, error) {
	query, err := queries.NewGetBagQuery(id)
	if err != nil {
		return servers.Bag{}, err
	}

	b, err := s.getBagHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return servers.Bag{}, err
	}

	return toBag(b), nil
}

// pathID converts a client supplied id. IDs are always positive, so any
// other value names an object that does not exist.
func pathID(paramName string, value int64) (kernel.ID, error) {
	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}, errs.NewObjectNotFoundErrorWithCause(paramName, value, err)
	}
	return id, nil
}

// knownIDs drops values that cannot be an ID; such objects are skipped the
// same way as unknown ones.
func knownIDs(values *[]int64) []kernel.ID {
	if values == nil {
		return []kernel.ID{}
	}

	ids := make([]kernel.ID, 0, len(*values))
	for _, v := range *values {
		if id, err := kernel.NewID(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
