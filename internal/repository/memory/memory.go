// Package memory provides an in-memory implementation of the repository
// contracts. It backs unit tests and local experiments without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/repository/contract"
	"ai-study-notebook-be/internal/repository/specification"
	"ai-study-notebook-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*entity.User
	notebooks  map[uuid.UUID]*entity.Notebook
	notes      map[uuid.UUID]*entity.Note
	files      map[uuid.UUID]*entity.File
	flashcards []*entity.Flashcard
	quizzes    []*entity.Quiz
	studyPlans []*entity.StudyPlan
}

func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*entity.User),
		notebooks: make(map[uuid.UUID]*entity.Notebook),
		notes:     make(map[uuid.UUID]*entity.Note),
		files:     make(map[uuid.UUID]*entity.File),
	}
}

// Seed helpers bypass the repositories for test setup.

func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.Id] = &cp
}

func (s *Store) SeedNotebook(n *entity.Notebook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *n
	s.notebooks[n.Id] = &cp
}

func (s *Store) SeedNote(n *entity.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *n
	s.notes[n.Id] = &cp
}

func (s *Store) SeedFile(f *entity.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *f
	s.files[f.Id] = &cp
}

func (s *Store) Note(notebookId uuid.UUID) *entity.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.NotebookId == notebookId {
			cp := *n
			return &cp
		}
	}
	return nil
}

func (s *Store) Flashcards() []*entity.Flashcard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Flashcard(nil), s.flashcards...)
}

func (s *Store) Quizzes() []*entity.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Quiz(nil), s.quizzes...)
}

func (s *Store) StudyPlans() []*entity.StudyPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.StudyPlan(nil), s.studyPlans...)
}

func (s *Store) NotebookCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notebooks)
}

func (s *Store) FileCount(notebookId uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, f := range s.files {
		if f.NotebookId == notebookId {
			n++
		}
	}
	return n
}

// NewRepositoryFactory returns a factory whose units of work all share the
// given store. Begin/Commit/Rollback are no-ops; the store has no
// transaction semantics.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) NotebookRepository() contract.NotebookRepository {
	return &notebookRepository{store: u.store}
}

func (u *unitOfWork) NoteRepository() contract.NoteRepository {
	return &noteRepository{store: u.store}
}

func (u *unitOfWork) FileRepository() contract.FileRepository {
	return &fileRepository{store: u.store}
}

func (u *unitOfWork) FlashcardRepository() contract.FlashcardRepository {
	return &flashcardRepository{store: u.store}
}

func (u *unitOfWork) QuizRepository() contract.QuizRepository {
	return &quizRepository{store: u.store}
}

func (u *unitOfWork) StudyPlanRepository() contract.StudyPlanRepository {
	return &studyPlanRepository{store: u.store}
}

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var n int64
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			n++
		}
	}
	return n, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

type notebookRepository struct {
	store *Store
}

func (r *notebookRepository) Create(ctx context.Context, notebook *entity.Notebook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *notebook
	r.store.notebooks[notebook.Id] = &cp
	return nil
}

func (r *notebookRepository) Update(ctx context.Context, notebook *entity.Notebook) error {
	return r.Create(ctx, notebook)
}

func (r *notebookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.notebooks, id)
	return nil
}

func (r *notebookRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, n := range r.store.notebooks {
		if matchNotebook(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *notebookRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	r.store.mu.RLock()
	var out []*entity.Notebook
	for _, n := range r.store.notebooks {
		if matchNotebook(n, specs) {
			cp := *n
			out = append(out, &cp)
		}
	}
	r.store.mu.RUnlock()

	if ord, ok := orderSpec(specs); ok && ord.Field == "created_at" {
		sort.Slice(out, func(i, j int) bool {
			if ord.Desc {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out, nil
}

func (r *notebookRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func matchNotebook(n *entity.Notebook, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

type noteRepository struct {
	store *Store
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *note
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	return r.Create(ctx, note)
}

func (r *noteRepository) DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, n := range r.store.notes {
		if n.NotebookId == notebookId {
			delete(r.store.notes, id)
		}
	}
	return nil
}

func (r *noteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, n := range r.store.notes {
		if matchNote(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func matchNote(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByNotebookID:
			if n.NotebookId != s.NotebookID {
				return false
			}
		}
	}
	return true
}

type fileRepository struct {
	store *Store
}

func (r *fileRepository) Create(ctx context.Context, file *entity.File) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *file
	r.store.files[file.Id] = &cp
	return nil
}

func (r *fileRepository) DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, f := range r.store.files {
		if f.NotebookId == notebookId {
			delete(r.store.files, id)
		}
	}
	return nil
}

func (r *fileRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.File, error) {
	r.store.mu.RLock()
	var out []*entity.File
	for _, f := range r.store.files {
		if matchFile(f, specs) {
			cp := *f
			out = append(out, &cp)
		}
	}
	r.store.mu.RUnlock()

	if ord, ok := orderSpec(specs); ok && ord.Field == "created_at" {
		sort.Slice(out, func(i, j int) bool {
			if ord.Desc {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out, nil
}

func matchFile(f *entity.File, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.ByNotebookID:
			if f.NotebookId != s.NotebookID {
				return false
			}
		}
	}
	return true
}

type flashcardRepository struct {
	store *Store
}

func (r *flashcardRepository) Create(ctx context.Context, flashcard *entity.Flashcard) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *flashcard
	r.store.flashcards = append(r.store.flashcards, &cp)
	return nil
}

func (r *flashcardRepository) DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.flashcards[:0]
	for _, f := range r.store.flashcards {
		if f.NotebookId != notebookId {
			kept = append(kept, f)
		}
	}
	r.store.flashcards = kept
	return nil
}

func (r *flashcardRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flashcard, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.Flashcard
	for _, f := range r.store.flashcards {
		if matchByNotebook(f.NotebookId, specs) {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

type quizRepository struct {
	store *Store
}

func (r *quizRepository) Create(ctx context.Context, quiz *entity.Quiz) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *quiz
	r.store.quizzes = append(r.store.quizzes, &cp)
	return nil
}

func (r *quizRepository) DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.quizzes[:0]
	for _, q := range r.store.quizzes {
		if q.NotebookId != notebookId {
			kept = append(kept, q)
		}
	}
	r.store.quizzes = kept
	return nil
}

func (r *quizRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.Quiz
	for _, q := range r.store.quizzes {
		if matchByNotebook(q.NotebookId, specs) {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

type studyPlanRepository struct {
	store *Store
}

func (r *studyPlanRepository) Create(ctx context.Context, plan *entity.StudyPlan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *plan
	r.store.studyPlans = append(r.store.studyPlans, &cp)
	return nil
}

func (r *studyPlanRepository) DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.studyPlans[:0]
	for _, p := range r.store.studyPlans {
		if p.NotebookId != notebookId {
			kept = append(kept, p)
		}
	}
	r.store.studyPlans = kept
	return nil
}

func (r *studyPlanRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyPlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.StudyPlan
	for _, p := range r.store.studyPlans {
		if matchByNotebook(p.NotebookId, specs) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func matchByNotebook(notebookId uuid.UUID, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByNotebookID); ok && notebookId != s.NotebookID {
			return false
		}
	}
	return true
}

func orderSpec(specs []specification.Specification) (specification.OrderBy, bool) {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok {
			return s, true
		}
	}
	return specification.OrderBy{}, false
}
