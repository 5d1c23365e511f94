package controller

import (
	"net/http"

	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/service"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/keerthanakottapalli/ShopSphere/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UploadController struct {
	service service.UploadService
}

func CreateUploadController(e *echo.Group, service service.UploadService) {
	c := UploadController{
		service: service,
	}

	e.POST("/upload", c.UploadImage)
}

// UploadImage accepts exactly one multipart file under the "image" field.
func (c *UploadController) UploadImage(e echo.Context) error {
	fileHeader, err := e.FormFile("image")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrNoImageFile)
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UploadImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer)
	}
	defer src.Close()

	imagePath, err := c.service.SaveImage(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), src)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, dto.UploadResponse{
		Message: "Image uploaded successfully",
		Image:   imagePath,
	})
}
