package controller

import (
	"net/http"
	"strconv"

	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/middleware"
	"github.com/keerthanakottapalli/ShopSphere/internal/service"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/keerthanakottapalli/ShopSphere/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, auth *middleware.AuthMiddleware) {
	c := ProductController{
		service: service,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/top", c.GetTopProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.CreateProduct, auth.Protect, auth.Admin)
	e.PUT("/products/:id", c.UpdateProduct, auth.Protect, auth.Admin)
	e.DELETE("/products/:id", c.DeleteProduct, auth.Protect, auth.Admin)
	e.POST("/products/:id/reviews", c.CreateProductReview, auth.Protect)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	keyword := e.QueryParam("keyword")
	pageNumber, err := strconv.ParseInt(e.QueryParam("pageNumber"), 10, 64)
	if err != nil {
		pageNumber = 1
	}

	resp, err := c.service.GetProducts(e.Request().Context(), keyword, pageNumber)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *ProductController) GetTopProducts(e echo.Context) error {
	products, err := c.service.GetTopProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, products)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, product)
}

// CreateProduct scaffolds a placeholder product for the admin to edit. Any
// request body is ignored.
func (c *ProductController) CreateProduct(e echo.Context) error {
	actingUser, ok := middleware.UserFromContext(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	product, err := c.service.CreateDraftProduct(e.Request().Context(), actingUser)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, http.StatusOK, "Product removed")
}

func (c *ProductController) CreateProductReview(e echo.Context) error {
	actingUser, ok := middleware.UserFromContext(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	payload := dto.ReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CreateProductReview").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	err = c.service.AddProductReview(e.Request().Context(), e.Param("id"), payload, actingUser)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, http.StatusCreated, "Review added")
}
