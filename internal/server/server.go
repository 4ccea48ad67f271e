package server

import (
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/nagare-labs/nagare/backend/internal/bootstrap"
	"github.com/nagare-labs/nagare/backend/internal/config"
	"github.com/nagare-labs/nagare/backend/internal/pkg/serverutils"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
	log *zap.Logger
}

func New(cfg *config.Config, container *bootstrap.Container, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: serverutils.ErrorHandler(log),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	registerRoutes(app, container)

	return &Server{
		app: app,
		cfg: cfg,
		log: log,
	}
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.MusicController.RegisterRoutes(api)
	c.PlayerController.RegisterRoutes(api)
	c.TaskController.RegisterRoutes(api)
	c.TimerController.RegisterRoutes(api)

	// The browser player attaches here; only websocket upgrades pass.
	ws := app.Group("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/player", websocket.New(func(conn *websocket.Conn) {
		c.PlayerHandle.Attach(conn)
	}))
}

func (s *Server) Run() error {
	s.log.Info("server listening", zap.String("port", s.cfg.App.Port))
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
