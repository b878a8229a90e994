package service

import (
	"context"
	"path"
	"path/filepath"
	"time"

	"ai-study-notebook-be/internal/dto"
	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/repository/unitofwork"
	"ai-study-notebook-be/pkg/extractor"
	"ai-study-notebook-be/pkg/storage"

	"github.com/google/uuid"
)

type IUploadService interface {
	Upload(ctx context.Context, userId, notebookId uuid.UUID, filename string, data []byte) (*dto.UploadResponse, error)
}

type uploadService struct {
	uowFactory unitofwork.RepositoryFactory
	extractor  extractor.Extractor
	store      storage.ObjectStore
}

func NewUploadService(uowFactory unitofwork.RepositoryFactory, ex extractor.Extractor, store storage.ObjectStore) IUploadService {
	return &uploadService{
		uowFactory: uowFactory,
		extractor:  ex,
		store:      store,
	}
}

func (s *uploadService) Upload(ctx context.Context, userId, notebookId uuid.UUID, filename string, data []byte) (*dto.UploadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwned(ctx, uow, userId, notebookId); err != nil {
		return nil, err
	}

	// Extraction runs before anything is written, so an unreadable file
	// leaves no orphaned blob or row behind.
	text, err := s.extractor.Extract(data, filename)
	if err != nil {
		return nil, err
	}

	fileId := uuid.New()
	storagePath := path.Join(notebookId.String(), fileId.String()+filepath.Ext(filename))
	if err := s.store.Put(storagePath, data); err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to store file", err)
	}

	file := &entity.File{
		Id:            fileId,
		NotebookId:    notebookId,
		StoragePath:   storagePath,
		ExtractedText: text,
		CreatedAt:     time.Now(),
	}
	if err := uow.FileRepository().Create(ctx, file); err != nil {
		return nil, apperror.Wrap(apperror.KindPersistenceError, "failed to save file record", err)
	}

	return &dto.UploadResponse{
		Id:            file.Id,
		ExtractedText: file.ExtractedText,
	}, nil
}
