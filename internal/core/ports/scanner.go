// Package ports defines the interfaces between the core and its adapters.
package ports

import (
	"context"

	"go.trai.ch/depscope/internal/core/domain"
)

// Scanner discovers the build units under a root folder and returns one
// dependency record per unit. The result is deterministic for a fixed file
// system state; no further ordering is guaranteed.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	Scan(ctx context.Context, root string) ([]domain.UnitRecord, error)
}
