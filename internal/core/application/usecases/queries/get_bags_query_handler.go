package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBagsQueryHandler lists bags with payload and available volume.
type GetBagsQueryHandler struct {
	db *gorm.DB
}

func NewGetBagsQueryHandler(db *gorm.DB) GetBagsQueryHandler {
	return GetBagsQueryHandler{db: db}
}

// Handle returns bag summaries ordered by ID.
func (h GetBagsQueryHandler) Handle(ctx context.Context, query GetBagsQuery) ([]BagSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := bagSummaries(h.db.WithContext(ctx))
	if len(query.ids) > 0 {
		tx = tx.Where("b.id IN ?", idValues(query.ids))
	}

	var rows []bagRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toSummaries(rows)
}

func toSummaries(rows []bagRow) ([]BagSummary, error) {
	result := make([]BagSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := row.toSummary()
		if err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, nil
}
