package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/services"
	"github.com/nagare-labs/nagare/backend/internal/dto"
	"github.com/nagare-labs/nagare/backend/internal/pkg/serverutils"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type taskController struct {
	tasks *services.Tasks
}

func NewTaskController(tasks *services.Tasks) ITaskController {
	return &taskController{tasks: tasks}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tasks")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id/move", c.Move)
	h.Delete(":id", c.Delete)
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	task := domain.Task{
		Title:    req.Title,
		Note:     req.Note,
		Priority: domain.Priority(req.Priority),
		Tags:     req.Tags,
	}
	if req.Date != "" {
		when, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		task.Date = &when
	}

	created, err := c.tasks.Create(ctx.Context(), task)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create task", dto.TaskResponse{Task: created}))
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	tasks, err := c.tasks.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", dto.TaskListResponse{Tasks: tasks}))
}

func (c *taskController) Move(ctx *fiber.Ctx) error {
	var req dto.MoveTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	task, err := c.tasks.Move(ctx.Context(), ctx.Params("id"), domain.TaskStatus(req.Status))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success move task", dto.TaskResponse{Task: task}))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	if err := c.tasks.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete task", nil))
}
