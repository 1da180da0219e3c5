// Package http contains the inbound REST adapter. The server translates HTTP
// requests into commands and queries, maps domain errors onto status codes,
// and drops the cached menu listings after every menu mutation.
package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createProductHandler      commands.CreateProductCommandHandler
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler
	createMenuGroupHandler    commands.CreateMenuGroupCommandHandler
	createMenuHandler         commands.CreateMenuCommandHandler
	changeMenuPriceHandler    commands.ChangeMenuPriceCommandHandler
	displayMenuHandler        commands.DisplayMenuCommandHandler
	hideMenuHandler           commands.HideMenuCommandHandler
	createOrderTableHandler   commands.CreateOrderTableCommandHandler
	occupyOrderTableHandler   commands.OccupyOrderTableCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	serveOrderHandler         commands.ServeOrderCommandHandler
	startDeliveringHandler    commands.StartDeliveringCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler
	completeOrderHandler      commands.CompleteOrderCommandHandler

	// Query handlers
	getProductsHandler          queries.GetProductsQueryHandler
	getMenusHandler             queries.GetMenusQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler

	menusCacheInvalidator queries.MenusCacheInvalidator
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler,
	createMenuGroupHandler commands.CreateMenuGroupCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	changeMenuPriceHandler commands.ChangeMenuPriceCommandHandler,
	displayMenuHandler commands.DisplayMenuCommandHandler,
	hideMenuHandler commands.HideMenuCommandHandler,
	createOrderTableHandler commands.CreateOrderTableCommandHandler,
	occupyOrderTableHandler commands.OccupyOrderTableCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	serveOrderHandler commands.ServeOrderCommandHandler,
	startDeliveringHandler commands.StartDeliveringCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getMenusHandler queries.GetMenusQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	menusCacheInvalidator queries.MenusCacheInvalidator,
) *Server {
	return &Server{
		createProductHandler:        createProductHandler,
		changeProductPriceHandler:   changeProductPriceHandler,
		createMenuGroupHandler:      createMenuGroupHandler,
		createMenuHandler:           createMenuHandler,
		changeMenuPriceHandler:      changeMenuPriceHandler,
		displayMenuHandler:          displayMenuHandler,
		hideMenuHandler:             hideMenuHandler,
		createOrderTableHandler:     createOrderTableHandler,
		occupyOrderTableHandler:     occupyOrderTableHandler,
		createOrderHandler:          createOrderHandler,
		acceptOrderHandler:          acceptOrderHandler,
		serveOrderHandler:           serveOrderHandler,
		startDeliveringHandler:      startDeliveringHandler,
		markDeliveredHandler:        markDeliveredHandler,
		completeOrderHandler:        completeOrderHandler,
		getProductsHandler:          getProductsHandler,
		getMenusHandler:             getMenusHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		menusCacheInvalidator:       menusCacheInvalidator,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/products", s.CreateProduct)
	v1.GET("/products", s.GetProducts)
	v1.PUT("/products/:id/price", s.ChangeProductPrice)

	v1.POST("/menu-groups", s.CreateMenuGroup)

	v1.POST("/menus", s.CreateMenu)
	v1.GET("/menus", s.GetMenus)
	v1.PUT("/menus/:id/price", s.ChangeMenuPrice)
	v1.PUT("/menus/:id/display", s.DisplayMenu)
	v1.PUT("/menus/:id/hide", s.HideMenu)

	v1.POST("/order-tables", s.CreateOrderTable)
	v1.PUT("/order-tables/:id/occupy", s.OccupyOrderTable)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetUncompletedOrders)
	v1.PUT("/orders/:id/accept", s.AcceptOrder)
	v1.PUT("/orders/:id/serve", s.ServeOrder)
	v1.PUT("/orders/:id/start-delivering", s.StartDelivering)
	v1.PUT("/orders/:id/mark-delivered", s.MarkDelivered)
	v1.PUT("/orders/:id/complete", s.CompleteOrder)
}

// CreateProduct handles POST /api/v1/products - creates a new product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request NewProduct
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID := kernel.NewUUID()

	command, err := commands.NewCreateProductCommand(productID, request.Name, price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// GetProducts handles GET /api/v1/products - retrieves all products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	return ctx.JSON(http.StatusOK, products)
}

// ChangeProductPrice handles PUT /api/v1/products/:id/price - changes a
// product price and publishes the price change for the menu cascade.
func (s *Server) ChangeProductPrice(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var request ChangePrice
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	command, err := commands.NewChangeProductPriceCommand(productID, price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeProductPriceHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateMenuGroup handles POST /api/v1/menu-groups - creates a new menu group.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var request NewMenuGroup
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuGroupID := kernel.NewUUID()

	command, err := commands.NewCreateMenuGroupCommand(menuGroupID, request.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createMenuGroupHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: menuGroupID.String()})
}

// CreateMenu handles POST /api/v1/menus - creates a new menu.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var request NewMenu
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	menuGroupID, err := kernel.UUIDFromString(request.MenuGroupID)
	if err != nil {
		return badRequest(ctx, "Invalid menu group ID")
	}

	productLines := make([]commands.ProductLine, 0, len(request.Products))
	for _, line := range request.Products {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid product ID")
		}

		productLines = append(productLines, commands.ProductLine{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	menuID := kernel.NewUUID()

	command, err := commands.NewCreateMenuCommand(
		menuID, request.Name, price, menuGroupID, request.Displayed, productLines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createMenuHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	s.invalidateMenus(ctx)

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: menuID.String()})
}

// GetMenus handles GET /api/v1/menus - retrieves menus, optionally only the
// displayed ones (?displayed=true).
func (s *Server) GetMenus(ctx echo.Context) error {
	onlyDisplayed := ctx.QueryParam("displayed") == "true"
	query := queries.NewGetMenusQuery(onlyDisplayed)

	menus, err := s.getMenusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve menus")
	}

	return ctx.JSON(http.StatusOK, menus)
}

// ChangeMenuPrice handles PUT /api/v1/menus/:id/price - changes a menu price.
func (s *Server) ChangeMenuPrice(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu ID")
	}

	var request ChangePrice
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	command, err := commands.NewChangeMenuPriceCommand(menuID, price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeMenuPriceHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	s.invalidateMenus(ctx)

	return ctx.NoContent(http.StatusNoContent)
}

// DisplayMenu handles PUT /api/v1/menus/:id/display - makes a menu visible.
func (s *Server) DisplayMenu(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu ID")
	}

	command, err := commands.NewDisplayMenuCommand(menuID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.displayMenuHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	s.invalidateMenus(ctx)

	return ctx.NoContent(http.StatusNoContent)
}

// HideMenu handles PUT /api/v1/menus/:id/hide - hides a menu from customers.
func (s *Server) HideMenu(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu ID")
	}

	command, err := commands.NewHideMenuCommand(menuID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.hideMenuHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	s.invalidateMenus(ctx)

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrderTable handles POST /api/v1/order-tables - creates a new order table.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	var request NewOrderTable
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderTableID := kernel.NewUUID()

	command, err := commands.NewCreateOrderTableCommand(orderTableID, request.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderTableHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderTableID.String()})
}

// OccupyOrderTable handles PUT /api/v1/order-tables/:id/occupy - seats a party.
func (s *Server) OccupyOrderTable(ctx echo.Context) error {
	orderTableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order table ID")
	}

	var request OccupyTable
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewOccupyOrderTableCommand(orderTableID, request.NumberOfGuests)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.occupyOrderTableHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrder
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := parseOrderType(request.OrderType)
	if err != nil {
		return badRequest(ctx, "Invalid order type")
	}

	orderLines := make([]commands.OrderLine, 0, len(request.OrderLines))
	for _, line := range request.OrderLines {
		menuID, lineErr := kernel.UUIDFromString(line.MenuID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid menu ID")
		}

		price, lineErr := kernel.NewPrice(line.Price)
		if lineErr != nil {
			return errorResponse(ctx, lineErr)
		}

		orderLines = append(orderLines, commands.OrderLine{
			MenuID:   menuID,
			Price:    price,
			Quantity: line.Quantity,
		})
	}

	var tableID *kernel.UUID
	if request.OrderTableID != "" {
		id, idErr := kernel.UUIDFromString(request.OrderTableID)
		if idErr != nil {
			return badRequest(ctx, "Invalid order table ID")
		}
		tableID = &id
	}

	orderID := kernel.NewUUID()

	command, err := commands.NewCreateOrderCommand(
		orderID, orderType, orderLines, tableID, request.DeliveryAddress)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetUncompletedOrders handles GET /api/v1/orders - retrieves all orders that
// have not reached the terminal Completed status.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]UncompletedOrder, len(orders))
	for i, o := range orders {
		item := UncompletedOrder{
			ID:              o.ID.String(),
			OrderType:       o.OrderType.String(),
			Status:          o.Status.String(),
			DeliveryAddress: o.DeliveryAddress,
		}
		if o.TableID != nil {
			tableID := o.TableID.String()
			item.OrderTableID = &tableID
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles PUT /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ServeOrder handles PUT /api/v1/orders/:id/serve.
func (s *Server) ServeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewServeOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.serveOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivering handles PUT /api/v1/orders/:id/start-delivering.
func (s *Server) StartDelivering(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewStartDeliveringCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startDeliveringHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles PUT /api/v1/orders/:id/mark-delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewMarkDeliveredCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles PUT /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// invalidateMenus drops the cached menu listings after a successful menu
// mutation. Failures are deliberately swallowed: the cache TTL is the
// backstop and the mutation itself has already committed.
func (s *Server) invalidateMenus(ctx echo.Context) {
	_ = s.menusCacheInvalidator.InvalidateMenus(ctx.Request().Context())
}

func parseOrderType(value string) (order.Type, error) {
	switch value {
	case "DineIn":
		return order.DineIn, nil
	case "Takeout":
		return order.Takeout, nil
	case "Delivery":
		return order.Delivery, nil
	default:
		return order.UnknownType, errs.NewValueIsInvalidError("order type")
	}
}

// errorResponse maps an application error onto an HTTP status code: missing
// aggregates are 404, invalid input is 400, rejected state changes are 409,
// everything else is a 500.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case isConflictError(err):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case isValidationError(err):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, err.Error())
	}
}

// isValidationError classifies through the errs sentinel families. Command
// sentinels like ErrMenuIsNotDisplayed or ErrNameContainsProfanity wrap
// errs.ErrValueIsInvalid, and the required-field sentinels wrap
// errs.ErrValueIsRequired, so none of them needs enumeration here.
func isValidationError(err error) bool {
	validationErrors := []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflictError(err error) bool {
	conflictErrors := []error{
		errs.ErrInvalidTransition,
		errs.ErrCapabilityNotSupported,
		errs.ErrDispatchFailed,
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
