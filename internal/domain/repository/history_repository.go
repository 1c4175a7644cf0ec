package repository

import (
	"context"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
)

// HistoryRepository is the append-only collection of finalized receipts.
// Records never mutate after Append; only removal is permitted.
type HistoryRepository interface {
	Append(ctx context.Context, receipt entity.Receipt) error
	// List returns receipts most-recent-first.
	List(ctx context.Context) ([]entity.Receipt, error)
	// Remove deletes the receipt with the given number. It returns
	// ErrKeyNotFound when no such receipt exists.
	Remove(ctx context.Context, number string) error
}
