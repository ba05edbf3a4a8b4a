package controller

import (
	"motoservice-be/internal/dto"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/serverutils"
	"motoservice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWorkerController interface {
	RegisterRoutes(r fiber.Router)
	UpdateAvailability(ctx *fiber.Ctx) error
}

type workerController struct {
	service service.IWorkerService
	auth    fiber.Handler
}

func NewWorkerController(service service.IWorkerService, auth fiber.Handler) IWorkerController {
	return &workerController{
		service: service,
		auth:    auth,
	}
}

func (c *workerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/worker/v1")
	h.Use(c.auth)
	h.Put(":id/availability", c.UpdateAvailability)
}

func (c *workerController) UpdateAvailability(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.ValidationFailure("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetAvailability(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Worker availability updated", res))
}
