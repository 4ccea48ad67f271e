package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nagare-labs/nagare/backend/internal/core/services"
	"github.com/nagare-labs/nagare/backend/internal/dto"
	"github.com/nagare-labs/nagare/backend/internal/pkg/serverutils"
)

type IPlayerController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Play(ctx *fiber.Ctx) error
	Pause(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Previous(ctx *fiber.Ctx) error
	Seek(ctx *fiber.Ctx) error
	Volume(ctx *fiber.Ctx) error
	Mute(ctx *fiber.Ctx) error
}

type playerController struct {
	engine *services.Engine
}

func NewPlayerController(engine *services.Engine) IPlayerController {
	return &playerController{engine: engine}
}

func (c *playerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/player")
	h.Get("/state", c.State)
	h.Post("/play", c.Play)
	h.Post("/pause", c.Pause)
	h.Post("/toggle", c.Toggle)
	h.Post("/next", c.Next)
	h.Post("/previous", c.Previous)
	h.Post("/seek", c.Seek)
	h.Post("/volume", c.Volume)
	h.Post("/mute", c.Mute)
}

// state responds with the current engine snapshot; every command endpoint
// returns it so the client can reconcile immediately.
func (c *playerController) state(ctx *fiber.Ctx, message string) error {
	return ctx.JSON(serverutils.SuccessResponse(message, dto.PlayerStateResponse{State: c.engine.Snapshot()}))
}

func (c *playerController) State(ctx *fiber.Ctx) error {
	return c.state(ctx, "Success get player state")
}

func (c *playerController) Play(ctx *fiber.Ctx) error {
	c.engine.Play()
	return c.state(ctx, "Success play")
}

func (c *playerController) Pause(ctx *fiber.Ctx) error {
	c.engine.Pause()
	return c.state(ctx, "Success pause")
}

func (c *playerController) Toggle(ctx *fiber.Ctx) error {
	c.engine.TogglePlay()
	return c.state(ctx, "Success toggle playback")
}

func (c *playerController) Next(ctx *fiber.Ctx) error {
	c.engine.Next()
	return c.state(ctx, "Success skip to next track")
}

func (c *playerController) Previous(ctx *fiber.Ctx) error {
	c.engine.Prev()
	return c.state(ctx, "Success skip to previous track")
}

func (c *playerController) Seek(ctx *fiber.Ctx) error {
	var req dto.SeekRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.engine.SeekTo(req.Seconds)
	return c.state(ctx, "Success seek")
}

func (c *playerController) Volume(ctx *fiber.Ctx) error {
	var req dto.VolumeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.engine.SetVolume(req.Volume)
	return c.state(ctx, "Success set volume")
}

func (c *playerController) Mute(ctx *fiber.Ctx) error {
	c.engine.ToggleMute()
	return c.state(ctx, "Success toggle mute")
}
