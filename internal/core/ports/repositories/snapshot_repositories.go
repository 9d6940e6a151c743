package repositories

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// SnapshotRepository loads the four raw collections of a company as one
// consistent read.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context, companyID string) (domain.Snapshot, error)
}
