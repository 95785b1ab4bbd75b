// Package historyrepo stores the append-only audit log.
package historyrepo

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/history"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EntityType string    `gorm:"index:idx_history_entity,priority:1"`
	EntityID   uuid.UUID `gorm:"type:uuid;index:idx_history_entity,priority:2"`
	Event      string
	FromStatus string
	ToStatus   string
	Note       string
	At         time.Time `gorm:"index"`
}

func (EntryDTO) TableName() string {
	return "history"
}

func fromDomain(e history.Entry) EntryDTO {
	return EntryDTO{
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID.Bytes(),
		Event:      e.Event,
		FromStatus: e.From,
		ToStatus:   e.To,
		Note:       e.Note,
		At:         e.At,
	}
}

// Append inserts entries using db, which is expected to be the transaction
// that persisted the corresponding state change.
func Append(ctx context.Context, db *gorm.DB, entries []history.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, fromDomain(e))
	}
	return db.WithContext(ctx).Create(&dtos).Error
}
