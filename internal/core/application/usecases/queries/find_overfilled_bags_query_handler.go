package queries

import (
	"context"

	"gorm.io/gorm"
)

type FindOverfilledBagsQueryHandler struct {
	db *gorm.DB
}

func NewFindOverfilledBagsQueryHandler(db *gorm.DB) FindOverfilledBagsQueryHandler {
	return FindOverfilledBagsQueryHandler{db: db}
}

// Handle returns overfilled bags ordered by ID. Their AvailableVolume is negative.
func (h FindOverfilledBagsQueryHandler) Handle(
	ctx context.Context,
	query FindOverfilledBagsQuery,
) ([]BagSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []bagRow
	if err := bagSummaries(h.db.WithContext(ctx)).
		Having("COALESCE(SUM(c.volume), 0) > b.volume").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toSummaries(rows)
}
