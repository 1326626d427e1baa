package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type menuItemUpserter interface {
	Handle(ctx context.Context, cmd commands.UpsertMenuItemCommand) (commands.UpsertMenuItemResult, error)
}

type orderPlacer interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
}

type menuReader interface {
	Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.MenuItemResponse, error)
}

type orderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	upsertMenuItemHandler menuItemUpserter
	placeOrderHandler     orderPlacer

	// Query handlers
	getMenuHandler  menuReader
	getOrderHandler orderReader

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	upsertMenuItemHandler menuItemUpserter,
	placeOrderHandler orderPlacer,
	getMenuHandler menuReader,
	getOrderHandler orderReader,
	logger *slog.Logger,
) *Server {
	return &Server{
		upsertMenuItemHandler: upsertMenuItemHandler,
		placeOrderHandler:     placeOrderHandler,
		getMenuHandler:        getMenuHandler,
		getOrderHandler:       getOrderHandler,
		logger:                logger.With("component", "http"),
	}
}

// GetMenu handles GET /menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpsertMenuItem handles POST /menu. It answers 201 when the (name, category)
// pair is new and 200 when an existing item got a new price.
func (s *Server) UpsertMenuItem(ctx echo.Context) error {
	var body servers.UpsertMenuItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewPriceFromFloat(body.Price)
	if err != nil {
		return s.respondError(ctx, err)
	}
	category, err := menu.ParseCategory(string(body.Category))
	if err != nil {
		return s.respondError(ctx, err)
	}
	cmd, err := commands.NewUpsertMenuItemCommand(body.Name, price, category)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.upsertMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return ctx.JSON(status, toMenuItem(queries.NewMenuItemResponse(result.Item)))
}

// PlaceOrder handles POST /orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemIDs := make([]kernel.UUID, 0, len(body.ItemIds))
	for i, raw := range body.ItemIds {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("itemIds[%d]", i), err))
		}
		itemIDs = append(itemIDs, id)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), itemIDs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(placed)))
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// respondError maps the error taxonomy onto status codes: validation errors
// are 400, missing objects 404, everything else a logged 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return badRequest(ctx, err.Error())
	case errs.IsNotFound(err):
		return ctx.JSON(http.StatusNotFound, servers.Error{Error: err.Error()})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"route", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: "internal server error"})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Error: message})
}

func toMenuItem(item queries.MenuItemResponse) servers.MenuItem {
	return servers.MenuItem{
		Id:       item.ID.Bytes(),
		Name:     item.Name,
		Price:    item.Price.Float64(),
		Category: servers.Category(item.Category.String()),
	}
}

func toOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.MenuItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = toMenuItem(item)
	}
	return servers.Order{
		Id:        o.ID.Bytes(),
		Items:     items,
		Status:    servers.OrderStatus(o.Status.String()),
		CreatedAt: o.CreatedAt.UTC(),
		UpdatedAt: o.UpdatedAt.UTC(),
	}
}
