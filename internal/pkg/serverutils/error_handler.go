package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// ErrorHandler maps errors bubbling out of handlers onto the response
// envelope. Domain not-found errors become 404s, fiber errors keep their
// status, everything else is a 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		switch {
		case errors.Is(err, domain.ErrNotFound):
			code = fiber.StatusNotFound
			message = "not found"
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("path", ctx.Path()),
				zap.Error(err),
			)
		}

		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}
