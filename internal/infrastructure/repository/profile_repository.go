package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	"github.com/rodamoinho/recibos-api/internal/domain/repository"
)

type profileRepository struct {
	kv repository.KVStore
}

// NewProfileRepository creates a profile repository over the KV port.
func NewProfileRepository(kv repository.KVStore) repository.ProfileRepository {
	return &profileRepository{kv: kv}
}

func (r *profileRepository) Get(ctx context.Context) (entity.Provider, error) {
	raw, err := r.kv.Get(ctx, repository.KeyProviderProfile)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return entity.Provider{}, nil
		}
		return entity.Provider{}, err
	}

	var provider entity.Provider
	if err := json.Unmarshal(raw, &provider); err != nil {
		return entity.Provider{}, err
	}
	return provider, nil
}

func (r *profileRepository) Save(ctx context.Context, provider entity.Provider) error {
	raw, err := json.Marshal(provider)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, repository.KeyProviderProfile, raw)
}

func (r *profileRepository) GetLogo(ctx context.Context) ([]byte, error) {
	raw, err := r.kv.Get(ctx, repository.KeyLogo)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

func (r *profileRepository) SaveLogo(ctx context.Context, png []byte) error {
	return r.kv.Set(ctx, repository.KeyLogo, png)
}

func (r *profileRepository) RemoveLogo(ctx context.Context) error {
	return r.kv.Remove(ctx, repository.KeyLogo)
}
