package controller

import (
	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"
	"ai-study-notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")
	auth.Post("/signup", c.Signup)
	auth.Post("/login", c.Login)
}

func (c *AuthController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.authService.Signup(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("signup successful", res))
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("login successful", res))
}
