package dto

import "github.com/google/uuid"

type UploadResponse struct {
	Id            uuid.UUID `json:"id"`
	ExtractedText string    `json:"extracted_text"`
}
