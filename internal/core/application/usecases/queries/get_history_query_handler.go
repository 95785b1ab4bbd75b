package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetHistoryQueryHandler(db *gorm.DB) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{db: db}
}

type historyRow struct {
	Event      string
	FromStatus string
	ToStatus   string
	Note       string
	At         time.Time
}

// Handle returns the entries in the order they were written. An entity
// without any entry is reported as not found.
func (h GetHistoryQueryHandler) Handle(ctx context.Context, query GetHistoryQuery) (HistoryView, error) {
	if err := query.Validate(); err != nil {
		return HistoryView{}, err
	}

	var rows []historyRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT h.event, h.from_status, h.to_status, h.note, h.at
		FROM history h
		WHERE h.entity_type = ? AND h.entity_id = ?
		ORDER BY h.at, h.id
	`, string(query.EntityType()), query.EntityID().Bytes()).Scan(&rows).Error
	if err != nil {
		return HistoryView{}, err
	}
	if len(rows) == 0 {
		return HistoryView{}, errs.NewObjectNotFoundError(string(query.EntityType())+"Id", query.EntityID())
	}

	view := HistoryView{Entries: make([]history.Entry, 0, len(rows))}
	for _, r := range rows {
		view.Entries = append(view.Entries, history.Entry{
			EntityType: query.EntityType(),
			EntityID:   query.EntityID(),
			Event:      r.Event,
			From:       r.FromStatus,
			To:         r.ToStatus,
			Note:       r.Note,
			At:         r.At,
		})
	}

	if at := query.At(); at != nil {
		if status, ok := history.Replay(view.Entries, *at); ok {
			view.StatusAt = &status
		}
	}
	return view, nil
}
