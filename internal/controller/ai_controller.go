package controller

import (
	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"
	"ai-study-notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router, authMw fiber.Handler)
	Summary(ctx *fiber.Ctx) error
	Flashcards(ctx *fiber.Ctx) error
	Quiz(ctx *fiber.Ctx) error
	StudyPlan(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type AiController struct {
	aiService service.IAiService
}

func NewAiController(aiService service.IAiService) IAiController {
	return &AiController{aiService: aiService}
}

func (c *AiController) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	ai := r.Group("/ai", authMw)
	ai.Post("/summary", c.Summary)
	ai.Post("/flashcards", c.Flashcards)
	ai.Post("/quiz", c.Quiz)
	ai.Post("/study-plan", c.StudyPlan)
	ai.Post("/chat", c.Chat)
}

func (c *AiController) Summary(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	var req dto.AIRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.aiService.Summary(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("summary generated", res))
}

func (c *AiController) Flashcards(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	var req dto.AIRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.aiService.Flashcards(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("flashcards generated", res))
}

func (c *AiController) Quiz(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	var req dto.QuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.aiService.Quiz(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("quiz generated", res))
}

func (c *AiController) StudyPlan(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	var req dto.StudyPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.aiService.StudyPlan(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("study plan generated", res))
}

func (c *AiController) Chat(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.aiService.Chat(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("answer generated", res))
}
