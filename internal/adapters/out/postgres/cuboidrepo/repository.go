package cuboidrepo

import (
	"context"
	"errors"

	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCuboidRepository implements CuboidRepository using GORM.
type GormCuboidRepository struct {
	db *gorm.DB
}

// NewGormCuboidRepository creates a new GORM cuboid repository.
func NewGormCuboidRepository(db *gorm.DB) *GormCuboidRepository {
	return &GormCuboidRepository{db: db}
}

// Add inserts a new cuboid and returns it with the ID assigned by the database.
func (r *GormCuboidRepository) Add(ctx context.Context, c *cuboid.Cuboid) (*cuboid.Cuboid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := FromDomain(c)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return ToDomain(dto)
}

// Update writes the dimensions and volume of an existing cuboid.
func (r *GormCuboidRepository) Update(ctx context.Context, c *cuboid.Cuboid) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := FromDomain(c)
	result := r.db.WithContext(ctx).
		Model(&CuboidDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"width":  dto.Width,
			"height": dto.Height,
			"depth":  dto.Depth,
			"volume": dto.Volume,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cuboid", c.ID().String())
	}

	return nil
}

// Get retrieves a cuboid by ID.
func (r *GormCuboidRepository) Get(ctx context.Context, id kernel.ID) (*cuboid.Cuboid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CuboidDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cuboid", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Delete removes a cuboid by ID.
func (r *GormCuboidRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).Delete(&CuboidDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cuboid", id.String())
	}

	return nil
}

// DeleteByBag removes every cuboid of a bag.
func (r *GormCuboidRepository) DeleteByBag(ctx context.Context, bagID kernel.ID) (int64, error) {
	if err := bagID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Where("bag_id = ?", bagID.Int64()).Delete(&CuboidDTO{})
	return result.RowsAffected, result.Error
}
