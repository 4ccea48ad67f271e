package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/services"
	"github.com/nagare-labs/nagare/backend/internal/dto"
	"github.com/nagare-labs/nagare/backend/internal/pkg/serverutils"
)

type ITimerController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Pause(ctx *fiber.Ctx) error
	Resume(ctx *fiber.Ctx) error
	Stop(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	SetMode(ctx *fiber.Ctx) error
	SwitchPhase(ctx *fiber.Ctx) error
	CompletePhase(ctx *fiber.Ctx) error
}

type timerController struct {
	timer *services.Timer
}

func NewTimerController(timer *services.Timer) ITimerController {
	return &timerController{timer: timer}
}

func (c *timerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/timer")
	h.Get("", c.State)
	h.Post("/start", c.Start)
	h.Post("/pause", c.Pause)
	h.Post("/resume", c.Resume)
	h.Post("/stop", c.Stop)
	h.Post("/reset", c.Reset)
	h.Put("/mode", c.SetMode)
	h.Post("/phase", c.SwitchPhase)
	h.Post("/complete-phase", c.CompletePhase)
}

func (c *timerController) state(ctx *fiber.Ctx, message string) error {
	return ctx.JSON(serverutils.SuccessResponse(message, dto.TimerStateResponse{State: c.timer.Snapshot()}))
}

func (c *timerController) State(ctx *fiber.Ctx) error {
	return c.state(ctx, "Success get timer state")
}

func (c *timerController) Start(ctx *fiber.Ctx) error {
	c.timer.Start()
	return c.state(ctx, "Success start timer")
}

func (c *timerController) Pause(ctx *fiber.Ctx) error {
	c.timer.Pause()
	return c.state(ctx, "Success pause timer")
}

func (c *timerController) Resume(ctx *fiber.Ctx) error {
	c.timer.Resume()
	return c.state(ctx, "Success resume timer")
}

func (c *timerController) Stop(ctx *fiber.Ctx) error {
	c.timer.Stop()
	return c.state(ctx, "Success stop timer")
}

func (c *timerController) Reset(ctx *fiber.Ctx) error {
	c.timer.Reset()
	return c.state(ctx, "Success reset timer")
}

func (c *timerController) SetMode(ctx *fiber.Ctx) error {
	var req dto.TimerModeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.timer.SetMode(domain.TimerMode(req.Mode))
	return c.state(ctx, "Success set timer mode")
}

func (c *timerController) SwitchPhase(ctx *fiber.Ctx) error {
	var req dto.TimerPhaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.timer.SwitchPhase(domain.TimerPhase(req.Phase))
	return c.state(ctx, "Success switch timer phase")
}

func (c *timerController) CompletePhase(ctx *fiber.Ctx) error {
	c.timer.CompletePhase()
	return c.state(ctx, "Success complete timer phase")
}
