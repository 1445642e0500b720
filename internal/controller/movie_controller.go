package controller

import (
	"streaminghub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMovieController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type movieController struct {
	service service.IMovieService
}

func NewMovieController(service service.IMovieService) IMovieController {
	return &movieController{service: service}
}

func (c *movieController) RegisterRoutes(r fiber.Router) {
	r.Get("/movies", c.List)
}

func (c *movieController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
