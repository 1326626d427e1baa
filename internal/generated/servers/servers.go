// Package servers holds the HTTP contract of the service: the OpenAPI document
// (openapi.yaml), the wire types it describes and the echo server interface
// with its parameter-binding wrapper. Handlers live in adapters/in/http.
package servers

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for Category.
const (
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
)

// Defines values for OrderStatus.
const (
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// Category defines model for Category.
type Category string

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// MenuItem defines model for MenuItem.
type MenuItem struct {
	Category Category           `json:"category"`
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
}

// NewMenuItem defines model for NewMenuItem.
type NewMenuItem struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ItemIds []openapi_types.UUID `json:"itemIds"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Items     []MenuItem         `json:"items"`
	Status    OrderStatus        `json:"status"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// UpsertMenuItemJSONRequestBody defines body for UpsertMenuItem for application/json ContentType.
type UpsertMenuItemJSONRequestBody = NewMenuItem

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List every menu item in insertion order
	// (GET /menu)
	GetMenu(ctx echo.Context) error
	// Add a menu item or update the price of an existing (name, category) pair
	// (POST /menu)
	UpsertMenuItem(ctx echo.Context) error
	// Place an order for existing menu items
	// (POST /orders)
	PlaceOrder(ctx echo.Context) error
	// Get an order with its current status
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	return w.Handler.GetMenu(ctx)
}

// UpsertMenuItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpsertMenuItem(ctx echo.Context) error {
	return w.Handler.UpsertMenuItem(ctx)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetOrder(ctx, id)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/menu", wrapper.GetMenu)
	router.POST(baseURL+"/menu", wrapper.UpsertMenuItem)
	router.POST(baseURL+"/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
}

//go:embed openapi.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// RawSpec returns the OpenAPI document as written in openapi.yaml.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed and validated OpenAPI document. Callers must
// not modify the result; it is shared.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = fmt.Errorf("loading openapi document: %w", err)
			return
		}
		if err := doc.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("validating openapi document: %w", err)
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}
