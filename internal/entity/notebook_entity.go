package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id          uuid.UUID
	UserId      uuid.UUID // Owner ID; every read/write must confirm it
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
