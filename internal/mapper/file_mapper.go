package mapper

import (
	"ai-study-notebook-be/internal/entity"
	"ai-study-notebook-be/internal/model"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.File) *entity.File {
	if f == nil {
		return nil
	}
	return &entity.File{
		Id:            f.Id,
		NotebookId:    f.NotebookId,
		StoragePath:   f.StoragePath,
		ExtractedText: f.ExtractedText,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FileMapper) ToModel(f *entity.File) *model.File {
	if f == nil {
		return nil
	}
	return &model.File{
		Id:            f.Id,
		NotebookId:    f.NotebookId,
		StoragePath:   f.StoragePath,
		ExtractedText: f.ExtractedText,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FileMapper) ToEntities(models []*model.File) []*entity.File {
	entities := make([]*entity.File, 0, len(models))
	for _, f := range models {
		entities = append(entities, m.ToEntity(f))
	}
	return entities
}
