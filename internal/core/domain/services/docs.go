// Package services holds domain services that span the bag and cuboid
// models.
//
// The package includes:
//   - CapacityPolicy: the gate every cuboid write passes through
//
// CapacityPolicy is stateless apart from its UpdateMode and safe to share
// between goroutines.
package services
