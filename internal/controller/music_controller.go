package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nagare-labs/nagare/backend/internal/core/services"
	"github.com/nagare-labs/nagare/backend/internal/dto"
	"github.com/nagare-labs/nagare/backend/internal/pkg/serverutils"
)

type IMusicController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Request(ctx *fiber.Ctx) error
}

type musicController struct {
	analyzer *services.Analyzer
	catalog  *services.Catalog
	pipeline *services.Pipeline
}

func NewMusicController(analyzer *services.Analyzer, catalog *services.Catalog, pipeline *services.Pipeline) IMusicController {
	return &musicController{
		analyzer: analyzer,
		catalog:  catalog,
		pipeline: pipeline,
	}
}

func (c *musicController) RegisterRoutes(r fiber.Router) {
	r.Post("/ai/analyze", c.Analyze)
	r.Get("/music/search", c.Search)
	r.Post("/music/request", c.Request)
}

// Analyze classifies a free-text message without touching the player.
func (c *musicController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	request := c.analyzer.Analyze(ctx.Context(), req.Message)
	return ctx.JSON(serverutils.SuccessResponse("Success analyze message", dto.AnalyzeResponse{Request: request}))
}

// Search runs a raw catalog search.
func (c *musicController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	tracks := c.catalog.Search(ctx.Context(), query, limit)
	return ctx.JSON(serverutils.SuccessResponse("Success search tracks", dto.SearchResponse{Tracks: tracks}))
}

// Request runs the full pipeline: analyze the message, plan catalog queries,
// search, and load the resulting playlist into the player.
func (c *musicController) Request(ctx *fiber.Ctx) error {
	var req dto.MusicRequestBody
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	request, tracks := c.pipeline.HandleMessage(ctx.Context(), req.Message)
	return ctx.JSON(serverutils.SuccessResponse("Success handle music request", dto.MusicRequestResponse{
		Request: request,
		Tracks:  tracks,
	}))
}
