package controller

import (
	"net/http"

	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/middleware"
	"github.com/keerthanakottapalli/ShopSphere/internal/service"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/keerthanakottapalli/ShopSphere/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, auth *middleware.AuthMiddleware) {
	c := UserController{
		service: service,
	}

	e.POST("/users", c.Register)
	e.POST("/users/login", c.Login)
	e.GET("/users/profile", c.GetProfile, auth.Protect)
	e.PUT("/users/profile", c.UpdateProfile, auth.Protect)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusCreated, resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *UserController) GetProfile(e echo.Context) error {
	actingUser, ok := middleware.UserFromContext(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	resp, err := c.service.GetProfile(e.Request().Context(), actingUser)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	actingUser, ok := middleware.UserFromContext(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProfile").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	resp, err := c.service.UpdateProfile(e.Request().Context(), actingUser, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}
