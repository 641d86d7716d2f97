// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cuboids/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BagRepoFactory provides access to bag repository within a transaction.
	BagRepoFactory interface {
		BagRepository() ports.BagRepository
	}

	// CuboidRepoFactory provides access to cuboid repository within a transaction.
	CuboidRepoFactory interface {
		CuboidRepository() ports.CuboidRepository
	}

	// BagUoW manages transactions for bag-only operations.
	BagUoW interface {
		TxManager
		BagRepoFactory
	}

	// BagUoWFactory creates new bag unit of work instances.
	BagUoWFactory interface {
		Create() BagUoW
	}

	// CuboidUoW manages transactions for cuboid-only operations.
	CuboidUoW interface {
		TxManager
		CuboidRepoFactory
	}

	// CuboidUoWFactory creates new cuboid unit of work instances.
	CuboidUoWFactory interface {
		Create() CuboidUoW
	}

	// UoW manages transactions across bags and cuboids. Every capacity
	// check runs inside one: the bag is locked, checked and the cuboid
	// written before Commit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   b, err := uow.BagRepository().GetForUpdate(ctx, bagID)
	//   // ... check capacity, write through uow.CuboidRepository()
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BagRepoFactory
		CuboidRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
