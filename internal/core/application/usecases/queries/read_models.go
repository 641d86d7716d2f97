// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read the tables directly; bag payloads
// are summed in SQL.
package queries

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
)

// BagSummary is a bag without its cuboids.
type BagSummary struct {
	ID              kernel.ID
	Title           string
	Volume          float64
	PayloadVolume   float64
	AvailableVolume float64
}

// BagReadModel is a bag with its cuboids ordered by ID.
type BagReadModel struct {
	BagSummary
	Cuboids []CuboidReadModel
}

// CuboidReadModel is a cuboid, optionally with a summary of its bag.
type CuboidReadModel struct {
	ID     kernel.ID
	Width  float64
	Height float64
	Depth  float64
	Volume float64
	BagID  kernel.ID
	Bag    *BagSummary
}

type bagRow struct {
	ID            int64
	Title         string
	Volume        float64
	PayloadVolume float64
}

type cuboidRow struct {
	ID     int64
	Width  float64
	Height float64
	Depth  float64
	Volume float64
	BagID  int64
}

// cuboidWithBagRow carries the bag columns aliased with a bag_ prefix.
type cuboidWithBagRow struct {
	ID               int64
	Width            float64
	Height           float64
	Depth            float64
	Volume           float64
	BagID            int64
	BagTitle         string
	BagVolume        float64
	BagPayloadVolume float64
}

func (r bagRow) toSummary() (BagSummary, error) {
	id, err := kernel.NewID(r.ID)
	if err != nil {
		return BagSummary{}, err
	}

	return BagSummary{
		ID:              id,
		Title:           r.Title,
		Volume:          r.Volume,
		PayloadVolume:   r.PayloadVolume,
		AvailableVolume: r.Volume - r.PayloadVolume,
	}, nil
}

func (r cuboidRow) toReadModel() (CuboidReadModel, error) {
	id, idErr := kernel.NewID(r.ID)
	bagID, bagErr := kernel.NewID(r.BagID)
	if err := errors.Join(idErr, bagErr); err != nil {
		return CuboidReadModel{}, err
	}

	return CuboidReadModel{
		ID:     id,
		Width:  r.Width,
		Height: r.Height,
		Depth:  r.Depth,
		Volume: r.Volume,
		BagID:  bagID,
	}, nil
}

func (r cuboidWithBagRow) toReadModel() (CuboidReadModel, error) {
	model, err := cuboidRow{
		ID:     r.ID,
		Width:  r.Width,
		Height: r.Height,
		Depth:  r.Depth,
		Volume: r.Volume,
		BagID:  r.BagID,
	}.toReadModel()
	if err != nil {
		return CuboidReadModel{}, err
	}

	summary, err := bagRow{
		ID:            r.BagID,
		Title:         r.BagTitle,
		Volume:        r.BagVolume,
		PayloadVolume: r.BagPayloadVolume,
	}.toSummary()
	if err != nil {
		return CuboidReadModel{}, err
	}

	model.Bag = &summary
	return model, nil
}

func idValues(ids []kernel.ID) []int64 {
	values := make([]int64, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.Int64())
	}
	return values
}

func validateIDs(ids []kernel.ID) error {
	errs := make([]error, 0)
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
