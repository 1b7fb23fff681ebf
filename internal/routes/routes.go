package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movies-api/internal/handler"
	"movies-api/internal/middleware"
)

// Options tweaks the router. Zero values disable the optional pieces.
type Options struct {
	AcceptedOrigins []string
	// Swagger is the OpenAPI document served under /swagger; nil disables the UI.
	Swagger []byte
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// SetupRouter builds the Fiber app serving the movies API.
func SetupRouter(h *handler.MovieHandler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Movies API",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				slog.Error("unhandled error", "error", err, "status", code)
			}
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", h.Health)
	if opts.Swagger != nil {
		handler.RegisterSwagger(app, "Movies API", opts.Swagger)
	}

	app.Use("/movies", middleware.CORS(opts.AcceptedOrigins))
	app.Get("/movies", h.ListMovies)
	app.Post("/movies", h.CreateMovie)
	app.Get("/movies/:id", h.GetMovie)
	app.Patch("/movies/:id", h.UpdateMovie)
	app.Delete("/movies/:id", h.DeleteMovie)
	app.Options("/movies/:id", middleware.Preflight(opts.AcceptedOrigins))

	return app
}
