package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/internal/repository/memory"
	"ai-study-notebook-be/pkg/extractor"
	"ai-study-notebook-be/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T) (IUploadService, *memory.Store, string, uuid.UUID, uuid.UUID) {
	t.Helper()
	store := memory.NewStore()
	dir := t.TempDir()

	objectStore, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	userId := uuid.New()
	notebookId := uuid.New()
	store.SeedNotebook(&entity.Notebook{
		Id: notebookId, UserId: userId, Title: "NB", CreatedAt: time.Now(),
	})

	svc := NewUploadService(memory.NewRepositoryFactory(store), extractor.NewDocumentExtractor(), objectStore)
	return svc, store, dir, userId, notebookId
}

func TestUploadTextFile(t *testing.T) {
	svc, store, dir, userId, notebookId := newUploadFixture(t)

	res, err := svc.Upload(context.Background(), userId, notebookId, "notes.txt", []byte("plain contents"))
	require.NoError(t, err)
	assert.Equal(t, "plain contents", res.ExtractedText)
	assert.Equal(t, 1, store.FileCount(notebookId))

	// The blob lands under the notebook's directory with the original extension.
	path := filepath.Join(dir, notebookId.String(), res.Id.String()+".txt")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plain contents", string(data))
}

func TestUploadMarkdownFile(t *testing.T) {
	svc, _, _, userId, notebookId := newUploadFixture(t)

	res, err := svc.Upload(context.Background(), userId, notebookId, "summary.md", []byte("# Heading"))
	require.NoError(t, err)
	assert.Equal(t, "# Heading", res.ExtractedText)
}

func TestUploadUnsupportedFormat(t *testing.T) {
	svc, store, _, userId, notebookId := newUploadFixture(t)

	_, err := svc.Upload(context.Background(), userId, notebookId, "slides.pptx", []byte("binary"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnsupportedFormat, apperror.KindOf(err))
	assert.Equal(t, 0, store.FileCount(notebookId), "a rejected upload must leave no row")
}

func TestUploadCorruptPDF(t *testing.T) {
	svc, store, _, userId, notebookId := newUploadFixture(t)

	_, err := svc.Upload(context.Background(), userId, notebookId, "broken.pdf", []byte("not a real pdf"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindExtractionError, apperror.KindOf(err))
	assert.Equal(t, 0, store.FileCount(notebookId))
}

func TestUploadToForeignNotebook(t *testing.T) {
	svc, _, _, _, notebookId := newUploadFixture(t)

	_, err := svc.Upload(context.Background(), uuid.New(), notebookId, "notes.txt", []byte("x"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
