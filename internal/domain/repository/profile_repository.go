package repository

import (
	"context"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
)

// ProfileRepository persists the provider profile across sessions.
type ProfileRepository interface {
	// Get returns the stored profile, or a zero profile when none exists.
	Get(ctx context.Context) (entity.Provider, error)
	Save(ctx context.Context, provider entity.Provider) error

	// GetLogo returns the optional uploaded logo as PNG bytes, or nil
	// when none is stored.
	GetLogo(ctx context.Context) ([]byte, error)
	SaveLogo(ctx context.Context, png []byte) error
	RemoveLogo(ctx context.Context) error
}
