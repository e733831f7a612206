package http

import (
	"errors"
	"net/http"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/application/usecases/queries"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// demoStreet is the fixed address used by the demo order endpoint. The geo
// service resolves any street to a grid location, so the value only needs to
// be non-empty.
const demoStreet = "Test Street"

// Server implements the generated ServerInterface. It translates HTTP
// requests into application commands and queries and maps their results back
// to response models.
type Server struct {
	createCourierHandler commands.CreateCourierCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	assignCourierHandler commands.AssignCourierCommandHandler
	moveCouriersHandler  commands.MoveCouriersCommandHandler

	getAllCouriersHandler       queries.GetAllCouriersQueryHandler
	getBusyCouriersHandler      queries.GetBusyCouriersQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	moveCouriersHandler commands.MoveCouriersCommandHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getBusyCouriersHandler queries.GetBusyCouriersQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
) *Server {
	return &Server{
		createCourierHandler:        createCourierHandler,
		createOrderHandler:          createOrderHandler,
		assignCourierHandler:        assignCourierHandler,
		moveCouriersHandler:         moveCouriersHandler,
		getAllCouriersHandler:       getAllCouriersHandler,
		getBusyCouriersHandler:      getBusyCouriersHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
	}
}

// GetCouriers handles GET /api/v1/couriers - retrieves couriers,
// optionally filtered by status.
func (s *Server) GetCouriers(ctx echo.Context, params servers.GetCouriersParams) error {
	if params.Status != nil && *params.Status == servers.Busy {
		return s.getBusyCouriers(ctx)
	}
	return s.getAllCouriers(ctx)
}

func (s *Server) getAllCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve couriers",
		})
	}

	response := make([]servers.Courier, len(couriers))
	for i, courier := range couriers {
		response[i] = servers.Courier{
			Id:   courier.ID.Bytes(),
			Name: courier.Name,
			Location: servers.Location{
				X: int(courier.Location.X()),
				Y: int(courier.Location.Y()),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getBusyCouriers(ctx echo.Context) error {
	query := queries.NewGetBusyCouriersQuery()

	couriers, err := s.getBusyCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve busy couriers",
		})
	}

	response := make([]servers.Courier, len(couriers))
	for i, courier := range couriers {
		transportName := courier.TransportName
		response[i] = servers.Courier{
			Id:            courier.ID.Bytes(),
			Name:          courier.Name,
			TransportName: &transportName,
			Location: servers.Location{
				X: int(courier.Location.X()),
				Y: int(courier.Location.Y()),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var newCourier servers.NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateCourierCommand(newCourier.Name, newCourier.Speed)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier data: " + err.Error(),
		})
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create courier",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders - creates a demo order.
// The basket id is generated server side and the street is fixed; a real
// basket service would supply both.
func (s *Server) CreateOrder(ctx echo.Context) error {
	basketID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(basketID, demoStreet)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders/active - retrieves all uncompleted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, order := range orders {
		response[i] = servers.Order{
			Id: order.ID.Bytes(),
			Location: servers.Location{
				X: int(order.Location.X()),
				Y: int(order.Location.Y()),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAssignment handles POST /api/v1/assignments - dispatches the oldest
// pending order to the nearest free courier.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	cmd := commands.NewAssignCourierCommand()

	err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrNoOrderFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "No pending orders",
		})
	case errors.Is(err, commands.ErrNoFreeCouriersFound):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "No free couriers",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to assign order",
		})
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateMovement handles POST /api/v1/movements - advances every busy courier
// one step towards its order.
func (s *Server) CreateMovement(ctx echo.Context) error {
	cmd := commands.NewMoveCouriersCommand()

	if err := s.moveCouriersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to move couriers",
		})
	}

	return ctx.NoContent(http.StatusOK)
}
