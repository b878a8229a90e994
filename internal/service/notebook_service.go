package service

import (
	"context"
	"time"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/repository/specification"
	"ai-study-notebook-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotebookService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.NotebookResponse, error)
	Show(ctx context.Context, userId, notebookId uuid.UUID) (*dto.NotebookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, userId, notebookId uuid.UUID) error
	UpsertNote(ctx context.Context, userId uuid.UUID, req *dto.UpsertNoteRequest) (*dto.NoteResponse, error)
	GetNote(ctx context.Context, userId, notebookId uuid.UUID) (*dto.NoteResponse, error)
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory) INotebookService {
	return &notebookService{uowFactory: uowFactory}
}

// findOwned loads a notebook and verifies ownership. Absence and ownership
// by another user are indistinguishable to the caller.
func findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, notebookId uuid.UUID) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: notebookId})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to load notebook", err)
	}
	if notebook == nil || notebook.UserId != userId {
		return nil, apperror.New(apperror.KindNotFound, "notebook not found")
	}
	return notebook, nil
}

func (s *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook := &entity.Notebook{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to create notebook", err)
	}

	return notebookToResponse(notebook), nil
}

func (s *notebookService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to list notebooks", err)
	}

	responses := make([]dto.NotebookResponse, 0, len(notebooks))
	for _, notebook := range notebooks {
		responses = append(responses, *notebookToResponse(notebook))
	}
	return responses, nil
}

func (s *notebookService) Show(ctx context.Context, userId, notebookId uuid.UUID) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := findOwned(ctx, uow, userId, notebookId)
	if err != nil {
		return nil, err
	}
	return notebookToResponse(notebook), nil
}

func (s *notebookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	notebook.Title = req.Title
	notebook.Description = req.Description
	now := time.Now()
	notebook.UpdatedAt = &now

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to update notebook", err)
	}
	return notebookToResponse(notebook), nil
}

func (s *notebookService) Delete(ctx context.Context, userId, notebookId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwned(ctx, uow, userId, notebookId); err != nil {
		return err
	}

	// The notebook and everything hanging off it go in one transaction.
	if err := uow.Begin(ctx); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DeleteByNotebookId(ctx, notebookId); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to delete note", err)
	}
	if err := uow.FileRepository().DeleteByNotebookId(ctx, notebookId); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to delete files", err)
	}
	if err := uow.FlashcardRepository().DeleteByNotebookId(ctx, notebookId); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to delete flashcards", err)
	}
	if err := uow.QuizRepository().DeleteByNotebookId(ctx, notebookId); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to delete quizzes", err)
	}
	if err := uow.StudyPlanRepository().DeleteByNotebookId(ctx, notebookId); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to delete study plans", err)
	}
	if err := uow.NotebookRepository().Delete(ctx, notebookId); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to delete notebook", err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.Wrap(apperror.KindPersistenceError, "failed to commit delete", err)
	}
	return nil
}

func (s *notebookService) UpsertNote(ctx context.Context, userId uuid.UUID, req *dto.UpsertNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwned(ctx, uow, userId, req.NotebookId); err != nil {
		return nil, err
	}

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByNotebookID{NotebookID: req.NotebookId})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to load note", err)
	}

	if note == nil {
		note = &entity.Note{
			Id:         uuid.New(),
			NotebookId: req.NotebookId,
			Content:    req.Content,
			CreatedAt:  time.Now(),
		}
		if err := uow.NoteRepository().Create(ctx, note); err != nil {
			return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to create note", err)
		}
	} else {
		note.Content = req.Content
		now := time.Now()
		note.UpdatedAt = &now
		if err := uow.NoteRepository().Update(ctx, note); err != nil {
			return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to update note", err)
		}
	}

	return noteToResponse(note), nil
}

func (s *notebookService) GetNote(ctx context.Context, userId, notebookId uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwned(ctx, uow, userId, notebookId); err != nil {
		return nil, err
	}

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByNotebookID{NotebookID: notebookId})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to load note", err)
	}
	if note == nil {
		return nil, apperror.New(apperror.KindNotFound, "note not found")
	}
	return noteToResponse(note), nil
}

func notebookToResponse(notebook *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:          notebook.Id,
		UserId:      notebook.UserId,
		Title:       notebook.Title,
		Description: notebook.Description,
		CreatedAt:   notebook.CreatedAt,
		UpdatedAt:   notebook.UpdatedAt,
	}
}

func noteToResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         note.Id,
		NotebookId: note.NotebookId,
		Content:    note.Content,
		AiSummary:  note.AiSummary,
	}
}
