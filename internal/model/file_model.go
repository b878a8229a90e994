package model

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotebookId    uuid.UUID `gorm:"type:uuid;not null;index"`
	StoragePath   string    `gorm:"type:text;not null"`
	ExtractedText string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (File) TableName() string {
	return "files"
}
