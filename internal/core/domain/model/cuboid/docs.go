// Package cuboid models the items stored in bags.
//
// A Cuboid knows its dimensions and owning bag; it does not know how much
// room the bag has left. Capacity decisions live in the bag package and the
// CapacityPolicy domain service.
package cuboid
