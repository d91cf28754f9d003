package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"minifeed/internal/config"
	"minifeed/internal/feed"
)

type Server struct {
	App *fiber.App
	Cfg config.Config
}

func NewServer(cfg config.Config, store feed.Store) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	s := &Server{
		App: app,
		Cfg: cfg,
	}

	registerRoutes(s, store)
	return s
}

func registerRoutes(s *Server, store feed.Store) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	feed.RegisterRoutes(s.App.Group("/api"), feed.NewService(store))
}
