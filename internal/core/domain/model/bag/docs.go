// Package bag models containers with a fixed volume and the pure capacity
// rule that decides whether another cuboid fits.
//
// AvailableVolume and CanFit take plain values so the rule can be used and
// tested without a database; the Bag aggregate exposes the same rule over its
// loaded cuboids.
package bag
