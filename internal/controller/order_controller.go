package controller

import (
	"net/http"

	"github.com/keerthanakottapalli/ShopSphere/config"
	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/middleware"
	"github.com/keerthanakottapalli/ShopSphere/internal/service"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/keerthanakottapalli/ShopSphere/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
	config  *config.Config
}

func CreateOrderController(e *echo.Group, service service.OrderService, config *config.Config, auth *middleware.AuthMiddleware) {
	c := OrderController{
		service: service,
		config:  config,
	}

	e.POST("/orders", c.AddOrder, auth.Protect)
	e.GET("/orders", c.GetOrders, auth.Protect, auth.Admin)
	e.GET("/orders/myorders", c.GetMyOrders, auth.Protect)
	e.GET("/orders/config/paypal", c.GetPayPalClientID, auth.Protect)
	e.GET("/orders/:id", c.GetOrderByID, auth.Protect)
	e.PUT("/orders/:id/pay", c.PayOrder, auth.Protect)
	e.PUT("/orders/:id/deliver", c.DeliverOrder, auth.Protect, auth.Admin)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	actingUser, ok := middleware.UserFromContext(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddOrder").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	order, err := c.service.AddOrder(e.Request().Context(), payload, actingUser)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusCreated, order)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	orders, err := c.service.GetOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, orders)
}

func (c *OrderController) GetMyOrders(e echo.Context) error {
	actingUser, ok := middleware.UserFromContext(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	orders, err := c.service.GetMyOrders(e.Request().Context(), actingUser)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, orders)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	actingUser, ok := middleware.UserFromContext(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	order, err := c.service.GetOrderByID(e.Request().Context(), e.Param("id"), actingUser)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, order)
}

func (c *OrderController) PayOrder(e echo.Context) error {
	payload := dto.PaymentResultRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "PayOrder").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	order, err := c.service.PayOrder(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, order)
}

func (c *OrderController) DeliverOrder(e echo.Context) error {
	order, err := c.service.DeliverOrder(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, order)
}

func (c *OrderController) GetPayPalClientID(e echo.Context) error {
	return response.WriteSuccessResponse(e, dto.PayPalConfigResponse{ClientID: c.config.PayPalClientID})
}
