package mapper

import (
	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/model"
)

type FlashcardMapper struct{}

func NewFlashcardMapper() *FlashcardMapper {
	return &FlashcardMapper{}
}

func (m *FlashcardMapper) ToEntity(f *model.Flashcard) *entity.Flashcard {
	if f == nil {
		return nil
	}
	return &entity.Flashcard{
		Id:         f.Id,
		NotebookId: f.NotebookId,
		Front:      f.Front,
		Back:       f.Back,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *FlashcardMapper) ToModel(f *entity.Flashcard) *model.Flashcard {
	if f == nil {
		return nil
	}
	return &model.Flashcard{
		Id:         f.Id,
		NotebookId: f.NotebookId,
		Front:      f.Front,
		Back:       f.Back,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *FlashcardMapper) ToEntities(models []*model.Flashcard) []*entity.Flashcard {
	entities := make([]*entity.Flashcard, 0, len(models))
	for _, f := range models {
		entities = append(entities, m.ToEntity(f))
	}
	return entities
}

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(q *model.Quiz) *entity.Quiz {
	if q == nil {
		return nil
	}
	return &entity.Quiz{
		Id:         q.Id,
		NotebookId: q.NotebookId,
		Data:       q.Data,
		CreatedAt:  q.CreatedAt,
	}
}

func (m *QuizMapper) ToModel(q *entity.Quiz) *model.Quiz {
	if q == nil {
		return nil
	}
	return &model.Quiz{
		Id:         q.Id,
		NotebookId: q.NotebookId,
		Data:       q.Data,
		CreatedAt:  q.CreatedAt,
	}
}

func (m *QuizMapper) ToEntities(models []*model.Quiz) []*entity.Quiz {
	entities := make([]*entity.Quiz, 0, len(models))
	for _, q := range models {
		entities = append(entities, m.ToEntity(q))
	}
	return entities
}

type StudyPlanMapper struct{}

func NewStudyPlanMapper() *StudyPlanMapper {
	return &StudyPlanMapper{}
}

func (m *StudyPlanMapper) ToEntity(p *model.StudyPlan) *entity.StudyPlan {
	if p == nil {
		return nil
	}
	return &entity.StudyPlan{
		Id:         p.Id,
		NotebookId: p.NotebookId,
		ExamDate:   p.ExamDate,
		PlanJSON:   p.PlanJSON,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *StudyPlanMapper) ToModel(p *entity.StudyPlan) *model.StudyPlan {
	if p == nil {
		return nil
	}
	return &model.StudyPlan{
		Id:         p.Id,
		NotebookId: p.NotebookId,
		ExamDate:   p.ExamDate,
		PlanJSON:   p.PlanJSON,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *StudyPlanMapper) ToEntities(models []*model.StudyPlan) []*entity.StudyPlan {
	entities := make([]*entity.StudyPlan, 0, len(models))
	for _, p := range models {
		entities = append(entities, m.ToEntity(p))
	}
	return entities
}
