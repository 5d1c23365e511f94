package response

import (
	"net/http"

	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteErrorResponse renders every handler failure as the {"message"} JSON body
// the frontend expects, with the status code taken from the errs map.
func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	return c.JSON(statusCode, MessageResponse{Message: err.Error()})
}

func WriteMessageResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

func WriteJSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

func WriteSuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
