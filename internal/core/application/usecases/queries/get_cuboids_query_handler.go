package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCuboidsQueryHandler reads cuboids with their bag summaries.
type GetCuboidsQueryHandler struct {
	db *gorm.DB
}

// NewGetCuboidsQueryHandler creates a handler for multi-ID cuboid reads.
// Requires a GORM database connection for query execution.
func NewGetCuboidsQueryHandler(db *gorm.DB) GetCuboidsQueryHandler {
	return GetCuboidsQueryHandler{db: db}
}

// Handle returns the matching cuboids ordered by ID.
func (h GetCuboidsQueryHandler) Handle(ctx context.Context, query GetCuboidsQuery) ([]CuboidReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]CuboidReadModel, 0)
	if len(query.ids) == 0 {
		return result, nil
	}

	var rows []cuboidWithBagRow
	if err := cuboidsWithBag(h.db.WithContext(ctx)).
		Where("c.id IN ?", idValues(query.ids)).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		model, err := row.toReadModel()
		if err != nil {
			return nil, err
		}
		result = append(result, model)
	}

	return result, nil
}
