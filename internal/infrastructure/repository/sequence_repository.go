package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rodamoinho/recibos-api/internal/domain/repository"
)

type sequenceRepository struct {
	kv repository.KVStore
}

// NewSequenceRepository creates the counter-backed number sequencer.
func NewSequenceRepository(kv repository.KVStore) repository.SequenceRepository {
	return &sequenceRepository{kv: kv}
}

func (r *sequenceRepository) Next(ctx context.Context) (string, error) {
	raw, err := r.kv.Get(ctx, repository.KeyLastNumber)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return formatNumber(1), nil
		}
		return "", err
	}

	last, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return "", fmt.Errorf("corrupt last receipt number %q: %w", raw, err)
	}
	return formatNumber(last + 1), nil
}

func (r *sequenceRepository) Commit(ctx context.Context, number string) error {
	n, err := strconv.Atoi(number)
	if err != nil {
		return fmt.Errorf("invalid receipt number %q: %w", number, err)
	}
	return r.kv.Set(ctx, repository.KeyLastNumber, []byte(strconv.Itoa(n)))
}

// formatNumber zero-pads to at least 4 digits; numbers beyond 9999 keep
// their natural width so identifiers stay strictly increasing.
func formatNumber(n int) string {
	return fmt.Sprintf("%04d", n)
}
