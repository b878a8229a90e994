package controller

import (
	"io"

	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/pkg/serverutils"
	"ai-study-notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router, authMw fiber.Handler)
	Upload(ctx *fiber.Ctx) error
}

type UploadController struct {
	uploadService service.IUploadService
}

func NewUploadController(uploadService service.IUploadService) IUploadController {
	return &UploadController{uploadService: uploadService}
}

func (c *UploadController) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	r.Post("/upload", authMw, c.Upload)
}

func (c *UploadController) Upload(ctx *fiber.Ctx) error {
	userId, err := requesterId(ctx)
	if err != nil {
		return err
	}

	notebookId, err := uuid.Parse(ctx.FormValue("notebook_id"))
	if err != nil {
		return apperror.New(apperror.KindInvalidInput, "notebook_id must be a valid uuid")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "file is required", err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "failed to open uploaded file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, "failed to read uploaded file", err)
	}

	res, err := c.uploadService.Upload(ctx.UserContext(), userId, notebookId, fileHeader.Filename, data)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("file uploaded", res))
}
