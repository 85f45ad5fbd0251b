package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Collection names, one per entity kind.
const (
	CollectionResource  = "studentresource"
	CollectionSummary   = "summary"
	CollectionNote      = "note"
	CollectionFlashcard = "flashcard"
	CollectionTask      = "studytask"
	CollectionPlan      = "studyplan"
	CollectionDoubt     = "doubt"
)

// Record is the single table behind the document store. Seq keeps insertion order.
type Record struct {
	Seq        uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	ID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Collection string         `gorm:"size:64;index;not null" json:"collection"`
	Data       datatypes.JSON `json:"data"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
