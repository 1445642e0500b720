package controller

import (
	"streaminghub-be/internal/dto"
	"streaminghub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	Recommend(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
}

func NewRecommendationController(service service.IRecommendationService) IRecommendationController {
	return &recommendationController{service: service}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	r.Post("/recommendations", c.Recommend)
}

func (c *recommendationController) Recommend(ctx *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	// No required-field check on preferences; the chat endpoint validates
	// strictly but this one never has. Kept until product confirms.

	res, err := c.service.Recommend(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
