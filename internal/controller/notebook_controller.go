package controller

import (
	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"
	"ai-study-notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router, authMw fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	UpsertNote(ctx *fiber.Ctx) error
	GetNote(ctx *fiber.Ctx) error
}

type NotebookController struct {
	notebookService service.INotebookService
}

func NewNotebookController(notebookService service.INotebookService) INotebookController {
	return &NotebookController{notebookService: notebookService}
}

func (c *NotebookController) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	notebooks := r.Group("/notebooks", authMw)
	notebooks.Post("/create", c.Create)
	notebooks.Get("/list", c.List)
	// Note routes go before the :id routes so "notes" is never taken
	// for a notebook id.
	notebooks.Post("/notes", c.UpsertNote)
	notebooks.Get("/notes/:notebookId", c.GetNote)
	notebooks.Get("/:id", c.Show)
	notebooks.Put("/:id", c.Update)
	notebooks.Delete("/:id", c.Delete)
}

// requesterId reads the authenticated user id set by the jwt middleware.
func requesterId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, apperror.New(apperror.KindUnauthenticated, "missing authentication")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.New(apperror.KindUnauthenticated, "missing authentication")
	}
	return id, nil
}

func pathUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.New(apperror.KindInvalidInput, name+" must be a valid uuid")
	}
	return id, nil
}

func (c *NotebookController) Create(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.notebookService.Create(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("notebook created", res))
}

func (c *NotebookController) List(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	res, err := c.notebookService.GetAll(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("notebooks retrieved", res))
}

func (c *NotebookController) Show(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}
	notebookId, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.notebookService.Show(ctx.UserContext(), userId, notebookId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("notebook retrieved", res))
}

func (c *NotebookController) Update(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}
	notebookId, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	req.Id = notebookId
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.notebookService.Update(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("notebook updated", res))
}

func (c *NotebookController) Delete(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}
	notebookId, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.notebookService.Delete(ctx.UserContext(), userId, notebookId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("notebook deleted", nil))
}

func (c *NotebookController) UpsertNote(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpsertNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.notebookService.UpsertNote(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("note saved", res))
}

func (c *NotebookController) GetNote(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}
	notebookId, err := pathUUID(ctx, "notebookId")
	if err != nil {
		return err
	}

	res, err := c.notebookService.GetNote(ctx.UserContext(), userId, notebookId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("note retrieved", res))
}
