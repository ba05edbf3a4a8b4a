package serverutils

import (
	"errors"

	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into BaseResponse JSON.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	if appErr, ok := apperror.As(err); ok {
		status := appErr.HTTPStatus()
		if appErr.Kind == apperror.KindDependencyFailure {
			log.Error("HTTP", appErr.Message, map[string]interface{}{
				"error":  err.Error(),
				"method": ctx.Method(),
				"path":   ctx.Path(),
			})
		}
		if appErr.Kind == apperror.KindInvalidStateTransition {
			return ctx.Status(status).JSON(ErrorResponseWithData(status, appErr.PublicMessage(), map[string]interface{}{
				"current_status": appErr.CurrentStatus,
			}))
		}
		return ctx.Status(status).JSON(ErrorResponse(status, appErr.PublicMessage()))
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, formatValidationErrors(validationErrs)))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	log.Error("HTTP", "Unhandled error", map[string]interface{}{
		"error":  err.Error(),
		"method": ctx.Method(),
		"path":   ctx.Path(),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
}
