package controller

import (
	"motoservice-be/internal/dto"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/serverutils"
	"motoservice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Confirm(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Invoice(ctx *fiber.Ctx) error
}

type bookingController struct {
	service service.IBookingService
	auth    fiber.Handler
}

func NewBookingController(service service.IBookingService, auth fiber.Handler) IBookingController {
	return &bookingController{
		service: service,
		auth:    auth,
	}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/booking/v1")
	h.Use(c.auth)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/confirm", c.Confirm)
	h.Post(":id/start", c.Start)
	h.Post(":id/complete", c.Complete)
	h.Post(":id/cancel", c.Cancel)
	h.Get(":id/invoice", c.Invoice)
}

// parseBody accepts an empty body as the zero request.
func parseBody(ctx *fiber.Ctx, req interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(req); err != nil {
		return apperror.ValidationFailure("invalid request body")
	}
	return nil
}

func (c *bookingController) Create(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.ValidationFailure("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Booking created", res))
}

func (c *bookingController) Show(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), actor, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get booking", res))
}

func (c *bookingController) Confirm(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Confirm(ctx.UserContext(), actor, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Booking confirmed", res))
}

func (c *bookingController) Start(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Start(ctx.UserContext(), actor, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Job started", res))
}

func (c *bookingController) Complete(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CompleteBookingRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Complete(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Booking completed", res))
}

func (c *bookingController) Cancel(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CancelBookingRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Cancel(ctx.UserContext(), actor, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Booking cancelled", res))
}

func (c *bookingController) Invoice(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetInvoice(ctx.UserContext(), actor, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get invoice", res))
}
