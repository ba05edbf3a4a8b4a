package controller

import (
	"motoservice-be/internal/dto"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/serverutils"
	"motoservice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	AbuseReport(ctx *fiber.Ctx) error
	HighRiskShops(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
	TriggerSweep(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
	auth    fiber.Handler
}

func NewAdminController(service service.IAdminService, auth fiber.Handler) IAdminController {
	return &adminController{
		service: service,
		auth:    auth,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(c.auth)

	// Abuse monitoring
	h.Get("abuse-report", c.AbuseReport)
	h.Get("high-risk-shops", c.HighRiskShops)

	// Audit trail
	h.Get("logs", c.Logs)

	// Assignment
	h.Post("assignments/sweep", c.TriggerSweep)
}

func (c *adminController) AbuseReport(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AbuseReport(ctx.UserContext(), actor)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get abuse report", res))
}

func (c *adminController) HighRiskShops(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.HighRiskShops(ctx.UserContext(), actor)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get high risk shops", res))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}

	var req dto.AdminLogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.ValidationFailure("invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Logs(ctx.UserContext(), actor, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get admin logs", res))
}

func (c *adminController) TriggerSweep(ctx *fiber.Ctx) error {
	actor, err := serverutils.Actor(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.TriggerSweep(ctx.UserContext(), actor)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assignment sweep finished", res))
}
