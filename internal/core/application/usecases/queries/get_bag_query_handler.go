package queries

import (
	"context"

	"cuboids/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetBagQueryHandler struct {
	db *gorm.DB
}

func NewGetBagQueryHandler(db *gorm.DB) GetBagQueryHandler {
	return GetBagQueryHandler{db: db}
}

// Handle returns the bag with its cuboids or errs.ObjectNotFoundError.
func (h GetBagQueryHandler) Handle(ctx context.Context, query GetBagQuery) (BagReadModel, error) {
	if err := query.Validate(); err != nil {
		return BagReadModel{}, err
	}

	db := h.db.WithContext(ctx)

	var bags []bagRow
	if err := bagSummaries(db).Where("b.id = ?", query.id.Int64()).Scan(&bags).Error; err != nil {
		return BagReadModel{}, err
	}
	if len(bags) == 0 {
		return BagReadModel{}, errs.NewObjectNotFoundError("bag", query.id.String())
	}

	summary, err := bags[0].toSummary()
	if err != nil {
		return BagReadModel{}, err
	}

	var rows []cuboidRow
	if err = plainCuboids(db).Where("bag_id = ?", query.id.Int64()).Scan(&rows).Error; err != nil {
		return BagReadModel{}, err
	}

	model := BagReadModel{
		BagSummary: summary,
		Cuboids:    make([]CuboidReadModel, 0, len(rows)),
	}
	for _, row := range rows {
		c, cErr := row.toReadModel()
		if cErr != nil {
			return BagReadModel{}, cErr
		}
		model.Cuboids = append(model.Cuboids, c)
	}

	return model, nil
}
