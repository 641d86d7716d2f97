package queries

import (
	"context"

	"cuboids/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCuboidQueryHandler struct {
	db *gorm.DB
}

func NewGetCuboidQueryHandler(db *gorm.DB) GetCuboidQueryHandler {
	return GetCuboidQueryHandler{db: db}
}

// Handle returns the cuboid or errs.ObjectNotFoundError.
func (h GetCuboidQueryHandler) Handle(ctx context.Context, query GetCuboidQuery) (CuboidReadModel, error) {
	if err := query.Validate(); err != nil {
		return CuboidReadModel{}, err
	}

	db := h.db.WithContext(ctx)

	if query.withBag {
		var rows []cuboidWithBagRow
		if err := cuboidsWithBag(db).Where("c.id = ?", query.id.Int64()).Limit(1).Scan(&rows).Error; err != nil {
			return CuboidReadModel{}, err
		}
		if len(rows) == 0 {
			return CuboidReadModel{}, errs.NewObjectNotFoundError("cuboid", query.id.String())
		}
		return rows[0].toReadModel()
	}

	var rows []cuboidRow
	if err := plainCuboids(db).Where("id = ?", query.id.Int64()).Limit(1).Scan(&rows).Error; err != nil {
		return CuboidReadModel{}, err
	}
	if len(rows) == 0 {
		return CuboidReadModel{}, errs.NewObjectNotFoundError("cuboid", query.id.String())
	}

	return rows[0].toReadModel()
}
