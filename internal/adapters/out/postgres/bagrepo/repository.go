package bagrepo

import (
	"context"
	"errors"

	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBagRepository implements BagRepository using GORM.
type GormBagRepository struct {
	db *gorm.DB
}

// NewGormBagRepository creates a new GORM bag repository.
func NewGormBagRepository(db *gorm.DB) *GormBagRepository {
	return &GormBagRepository{db: db}
}

// Add inserts a new bag. Only empty bags can be added.
func (r *GormBagRepository) Add(ctx context.Context, aggregate *bag.Bag) (*bag.Bag, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update writes the title and volume of an existing bag.
func (r *GormBagRepository) Update(ctx context.Context, aggregate *bag.Bag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BagDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"title":  dto.Title,
			"volume": dto.Volume,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bag", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a bag with all of its cuboids.
func (r *GormBagRepository) Get(ctx context.Context, id kernel.ID) (*bag.Bag, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a bag with all of its cuboids and holds a row lock
// on the bag until the transaction ends. SQLite has no row locks and relies
// on its database-level write lock instead.
func (r *GormBagRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*bag.Bag, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Delete removes the bag row.
func (r *GormBagRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).Delete(&BagDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bag", id.String())
	}

	return nil
}

func (r *GormBagRepository) get(ctx context.Context, db *gorm.DB, id kernel.ID) (*bag.Bag, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BagDTO
	err := db.WithContext(ctx).
		Preload("Cuboids", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bag", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
