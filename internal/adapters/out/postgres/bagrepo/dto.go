// Package bagrepo provides data transfer objects, mapping functions and the
// GORM repository for the bag aggregate. A bag row is always loaded together
// with its cuboid rows.
package bagrepo

import (
	"cuboids/internal/adapters/out/postgres/cuboidrepo"
	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/kernel"
)

// BagDTO represents the database structure for persisting bags.
type BagDTO struct {
	ID      int64                  `gorm:"primaryKey;autoIncrement"`
	Title   string                 `gorm:"type:varchar(255);not null"`
	Volume  float64                `gorm:"type:double precision;not null"`
	Cuboids []cuboidrepo.CuboidDTO `gorm:"foreignKey:BagID"`
}

// TableName overrides GORM's default "bag_dtos".
func (BagDTO) TableName() string {
	return "bags"
}

// fromDomain maps the bag row only. Cuboids are written through the cuboid
// repository.
func fromDomain(b *bag.Bag) BagDTO {
	return BagDTO{
		ID:     b.ID().Int64(),
		Title:  b.Title(),
		Volume: b.Volume(),
	}
}

// toDomain rebuilds the aggregate from a row with preloaded cuboids.
func toDomain(dto BagDTO) (*bag.Bag, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	cuboids, err := cuboidrepo.ToDomainList(dto.Cuboids)
	if err != nil {
		return nil, err
	}

	return bag.RestoreBag(id, dto.Title, dto.Volume, cuboids)
}
