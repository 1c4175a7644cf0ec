package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	"github.com/rodamoinho/recibos-api/internal/domain/repository"
)

type historyRepository struct {
	kv repository.KVStore
}

// NewHistoryRepository creates a history repository over the KV port.
// The whole history lives under one key as a JSON array, which is fine
// at the expected scale of dozens to low hundreds of records.
func NewHistoryRepository(kv repository.KVStore) repository.HistoryRepository {
	return &historyRepository{kv: kv}
}

func (r *historyRepository) load(ctx context.Context) ([]entity.Receipt, error) {
	raw, err := r.kv.Get(ctx, repository.KeyHistory)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var receipts []entity.Receipt
	if err := json.Unmarshal(raw, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *historyRepository) save(ctx context.Context, receipts []entity.Receipt) error {
	raw, err := json.Marshal(receipts)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, repository.KeyHistory, raw)
}

func (r *historyRepository) Append(ctx context.Context, receipt entity.Receipt) error {
	receipts, err := r.load(ctx)
	if err != nil {
		return err
	}
	// Most-recent-first, matching List order.
	receipts = append([]entity.Receipt{receipt}, receipts...)
	return r.save(ctx, receipts)
}

func (r *historyRepository) List(ctx context.Context) ([]entity.Receipt, error) {
	return r.load(ctx)
}

func (r *historyRepository) Remove(ctx context.Context, number string) error {
	receipts, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := receipts[:0]
	found := false
	for _, rec := range receipts {
		if rec.Number == number {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return repository.ErrKeyNotFound
	}
	return r.save(ctx, kept)
}
