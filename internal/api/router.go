package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"
	"github.com/saturnino-fabrica-de-software/centinela/internal/api/docs"
	"github.com/saturnino-fabrica-de-software/centinela/internal/api/handler"
	"github.com/saturnino-fabrica-de-software/centinela/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/centinela/internal/repository"
)

type Dependencies struct {
	PersonRepo    repository.PersonRepositoryInterface
	DetectionRepo repository.DetectionRepositoryInterface
	EventRepo     repository.EventRepositoryInterface
	CameraRepo    repository.CameraRepositoryInterface
	ConfigRepo    repository.ConfigRepositoryInterface
	StatsRepo     repository.StatsRepositoryInterface
	PhotoDir      string
	DB            *pgxpool.Pool
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Centinela API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	var pinger handler.Pinger
	if r.deps != nil && r.deps.DB != nil {
		pinger = r.deps.DB
	}
	healthHandler := handler.NewHealthHandler(pinger)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	if r.deps == nil {
		return
	}

	dashboardHandler := handler.NewDashboardHandler(r.deps.StatsRepo, r.logger)
	personHandler := handler.NewPersonHandler(r.deps.PersonRepo, r.deps.PhotoDir, r.logger)
	detectionHandler := handler.NewDetectionHandler(r.deps.DetectionRepo, r.logger)
	eventHandler := handler.NewEventHandler(r.deps.EventRepo, r.logger)
	cameraHandler := handler.NewCameraHandler(r.deps.CameraRepo, r.logger)
	configHandler := handler.NewConfigHandler(r.deps.ConfigRepo, r.logger)

	api := r.app.Group("/api")

	api.Get("/dashboard/stats", dashboardHandler.Stats)
	api.Get("/dashboard/activity", dashboardHandler.Activity)

	api.Get("/personas", personHandler.List)
	api.Post("/personas", personHandler.Create)
	api.Get("/personas/:id", personHandler.Get)
	api.Put("/personas/:id", personHandler.Update)
	api.Delete("/personas/:id", personHandler.Delete)

	api.Get("/detecciones", detectionHandler.List)

	api.Get("/eventos", eventHandler.List)
	api.Post("/eventos/:id/resolver", eventHandler.Resolve)

	api.Get("/camaras", cameraHandler.List)

	api.Get("/configuracion", configHandler.Get)
	api.Post("/configuracion", configHandler.Update)
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}

// App exposes the underlying Fiber app for tests.
func (r *Router) App() *fiber.App {
	return r.app
}
