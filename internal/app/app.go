package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/config"
	"github.com/keerthanakottapalli/ShopSphere/internal/controller"
	"github.com/keerthanakottapalli/ShopSphere/internal/infrastructure/message-queue/kafka"
	"github.com/keerthanakottapalli/ShopSphere/internal/infrastructure/tracing"
	"github.com/keerthanakottapalli/ShopSphere/internal/middleware"
	"github.com/keerthanakottapalli/ShopSphere/internal/repository"
	"github.com/keerthanakottapalli/ShopSphere/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB       *mongo.Database
	Config   *config.Config
	Producer *kafka.Producer
	Server   *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("shopsphere-api")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	allowedOrigins := app.Config.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
	}))

	e.Use(middleware.Logger)

	// Uploaded images are served statically alongside the API.
	e.Static("/uploads", app.Config.UploadDir)

	g := e.Group("/api")

	productRepo := repository.CreateNewProductRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)

	auth := middleware.CreateAuthMiddleware(app.Config, userRepo)

	productSvc := service.CreateProductService(productRepo, orderRepo, app.Producer)
	orderSvc := service.CreateOrderService(orderRepo, userRepo, app.Producer)
	userSvc := service.CreateUserService(userRepo, *app.Config)
	uploadSvc := service.CreateUploadService(app.Config.UploadDir)

	controller.CreateProductController(g, productSvc, auth)
	controller.CreateOrderController(g, orderSvc, app.Config, auth)
	controller.CreateUserController(g, userSvc, auth)
	controller.CreateUploadController(g, uploadSvc)

	g.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
