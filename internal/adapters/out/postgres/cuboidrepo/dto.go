// Package cuboidrepo provides data transfer objects, mapping functions and
// the GORM repository for cuboid persistence.
package cuboidrepo

import (
	"errors"

	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
)

// CuboidDTO represents the database structure for persisting cuboids.
// Volume is stored next to the dimensions so that bag payloads can be summed
// in SQL.
type CuboidDTO struct {
	ID     int64   `gorm:"primaryKey;autoIncrement"`
	Width  float64 `gorm:"type:double precision;not null"`
	Height float64 `gorm:"type:double precision;not null"`
	Depth  float64 `gorm:"type:double precision;not null"`
	Volume float64 `gorm:"type:double precision;not null"`
	BagID  int64   `gorm:"not null;index"`
}

// TableName overrides GORM's default "cuboid_dtos".
func (CuboidDTO) TableName() string {
	return "cuboids"
}

// FromDomain converts a cuboid to its row. A cuboid that is not stored yet
// maps to ID 0, which lets the database assign one.
func FromDomain(c *cuboid.Cuboid) CuboidDTO {
	return CuboidDTO{
		ID:     c.ID().Int64(),
		Width:  c.Width(),
		Height: c.Height(),
		Depth:  c.Depth(),
		Volume: c.Volume(),
		BagID:  c.BagID().Int64(),
	}
}

// ToDomain rebuilds a cuboid from its row using RestoreCuboid.
func ToDomain(dto CuboidDTO) (*cuboid.Cuboid, error) {
	id, idErr := kernel.NewID(dto.ID)
	bagID, bagErr := kernel.NewID(dto.BagID)
	dims, dimsErr := kernel.NewDimensions(dto.Width, dto.Height, dto.Depth)
	if err := errors.Join(idErr, bagErr, dimsErr); err != nil {
		return nil, err
	}

	return cuboid.RestoreCuboid(id, bagID, dims)
}

// ToDomainList converts rows in order.
func ToDomainList(dtos []CuboidDTO) ([]*cuboid.Cuboid, error) {
	cuboids := make([]*cuboid.Cuboid, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		cuboids = append(cuboids, c)
	}
	return cuboids, nil
}
