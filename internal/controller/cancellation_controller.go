package controller

import (
	"motoservice-be/internal/pkg/serverutils"
	"motoservice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICancellationController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
}

type cancellationController struct {
	service service.ICancellationService
	auth    fiber.Handler
}

func NewCancellationController(service service.ICancellationService, auth fiber.Handler) ICancellationController {
	return &cancellationController{
		service: service,
		auth:    auth,
	}
}

func (c *cancellationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cancellation/v1")
	h.Use(c.auth)
	h.Get("status", c.Status)
}

func (c *cancellationController) Status(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Status(ctx.UserContext(), actor)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get cancellation status", res))
}
