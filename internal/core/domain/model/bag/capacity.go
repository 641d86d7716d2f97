package bag

import "cuboids/internal/core/domain/model/cuboid"

// AvailableVolume returns bagVolume minus the summed volume of cuboids. The
// result is not clamped: a negative value means the bag is already overfilled.
func AvailableVolume(bagVolume float64, cuboids []*cuboid.Cuboid) float64 {
	return bagVolume - cuboid.TotalVolume(cuboids)
}

// CanFit reports whether proposedVolume fits into availableVolume. An exact
// fit is allowed.
func CanFit(availableVolume, proposedVolume float64) bool {
	return proposedVolume <= availableVolume
}
