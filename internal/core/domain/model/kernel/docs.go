// Package kernel holds the value objects shared by the bag and cuboid models.
//
// The package includes:
//   - ID: a database-assigned positive identifier
//   - Dimensions: the validated sides of a cuboid and its derived volume
//
// Both are immutable and safe to copy.
package kernel
