package middleware

import (
	"strings"

	"github.com/keerthanakottapalli/ShopSphere/config"
	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/internal/repository"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/keerthanakottapalli/ShopSphere/pkg/response"
	"github.com/keerthanakottapalli/ShopSphere/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const userContextKey = "user"

type AuthMiddleware struct {
	config   *config.Config
	userRepo repository.UserRepository
}

func CreateAuthMiddleware(config *config.Config, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{config: config, userRepo: userRepo}
}

// Protect validates the bearer token and loads the calling user into the
// request context. The user is fetched fresh so revoked accounts and stale
// admin flags do not survive the token lifetime.
func (m *AuthMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn)
		}

		userID, err := utils.ParseJWTToken(strings.TrimPrefix(authHeader, "Bearer "), m.config.JWTSecret)
		if err != nil {
			log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "Protect").Msg("")
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn)
		}

		user, err := m.userRepo.GetUserByID(c.Request().Context(), userID)
		if err != nil {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn)
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// Admin gates a route on the isAdmin flag. Must run after Protect.
func (m *AuthMiddleware) Admin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok || !user.IsAdmin {
			return response.WriteErrorResponse(c, errs.ErrForbidden)
		}

		return next(c)
	}
}

func UserFromContext(c echo.Context) (domain.User, bool) {
	user, ok := c.Get(userContextKey).(domain.User)
	return user, ok
}
