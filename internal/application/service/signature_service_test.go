package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inframepo "github.com/rodamoinho/recibos-api/internal/infrastructure/repository"
	"github.com/rodamoinho/recibos-api/internal/infrastructure/storage"
	"github.com/rodamoinho/recibos-api/pkg/signature"
)

func strokeEvents(x0, y0, x1, y1 float64) []signature.PointerEvent {
	return []signature.PointerEvent{
		{Kind: signature.PointerDown, Sample: signature.Sample{X: x0, Y: y0}},
		{Kind: signature.PointerMove, Sample: signature.Sample{X: x1, Y: y1}},
		{Kind: signature.PointerUp},
	}
}

func TestSignatureStoredOnStrokeEnd(t *testing.T) {
	kv := storage.NewMemoryKV()
	profileRepo := inframepo.NewProfileRepository(kv)
	svc := NewSignatureService(profileRepo)
	ctx := context.Background()

	state, err := svc.Apply(ctx, ApplyInput{
		DisplayWidth:  signature.DefaultWidth,
		DisplayHeight: signature.DefaultHeight,
		Events:        strokeEvents(10, 10, 200, 80),
	})
	require.NoError(t, err)
	assert.Equal(t, signature.Idle, state)
	assert.False(t, svc.Empty())

	provider, err := profileRepo.Get(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, provider.Signature)
}

func TestSignatureClearEmptiesStoredField(t *testing.T) {
	kv := storage.NewMemoryKV()
	profileRepo := inframepo.NewProfileRepository(kv)
	svc := NewSignatureService(profileRepo)
	ctx := context.Background()

	_, err := svc.Apply(ctx, ApplyInput{
		DisplayWidth:  signature.DefaultWidth,
		DisplayHeight: signature.DefaultHeight,
		Events:        strokeEvents(10, 10, 200, 80),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))
	assert.True(t, svc.Empty())

	provider, err := profileRepo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, provider.Signature)
}

func TestSignatureBareTapStoresNothing(t *testing.T) {
	kv := storage.NewMemoryKV()
	profileRepo := inframepo.NewProfileRepository(kv)
	svc := NewSignatureService(profileRepo)
	ctx := context.Background()

	// Down then up with no movement finishes a stroke that marked
	// nothing; the blank bitmap must not reach the profile.
	state, err := svc.Apply(ctx, ApplyInput{
		DisplayWidth:  signature.DefaultWidth,
		DisplayHeight: signature.DefaultHeight,
		Events: []signature.PointerEvent{
			{Kind: signature.PointerDown, Sample: signature.Sample{X: 50, Y: 50}},
			{Kind: signature.PointerUp},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, signature.Idle, state)
	assert.True(t, svc.Empty())

	provider, err := profileRepo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, provider.Signature)
}

func TestSignatureMidStrokeDoesNotStore(t *testing.T) {
	kv := storage.NewMemoryKV()
	profileRepo := inframepo.NewProfileRepository(kv)
	svc := NewSignatureService(profileRepo)
	ctx := context.Background()

	state, err := svc.Apply(ctx, ApplyInput{
		DisplayWidth:  signature.DefaultWidth,
		DisplayHeight: signature.DefaultHeight,
		Events: []signature.PointerEvent{
			{Kind: signature.PointerDown, Sample: signature.Sample{X: 10, Y: 10}},
			{Kind: signature.PointerMove, Sample: signature.Sample{X: 50, Y: 50}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, signature.Stroking, state)

	provider, err := profileRepo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, provider.Signature)
}
