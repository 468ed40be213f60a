// Package server exposes the move codec over HTTP.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/lgbarn/sanmove-go/internal/config"
)

// RequestIDHeader is echoed on every response.
const RequestIDHeader = "X-Request-ID"

// New builds the HTTP application for cfg.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "san-codec",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + RequestIDHeader,
		AllowMethods: "GET, POST, OPTIONS",
	}))
	if cfg.Verbosity > 0 {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
			Output: cfg.LogFile,
		}))
	}

	h := &handlers{cfg: cfg}
	app.Get("/health", h.health)

	api := app.Group("/api")
	api.Post("/parse", h.parse)
	api.Post("/compile", h.compile)
	api.Post("/batch", h.batch)

	return app
}

// errorHandler renders every error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
