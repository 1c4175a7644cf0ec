package service

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/rodamoinho/recibos-api/internal/domain/repository"
	"github.com/rodamoinho/recibos-api/pkg/signature"
)

// SignatureService owns the live signature pad and mirrors finished
// strokes into the provider profile. All interaction is serialized: the
// capture surface belongs to a single operator session.
type SignatureService struct {
	mu          sync.Mutex
	pad         *signature.Pad
	profileRepo repository.ProfileRepository
}

// NewSignatureService creates a signature service with an empty pad.
func NewSignatureService(profileRepo repository.ProfileRepository) *SignatureService {
	return &SignatureService{
		pad:         signature.NewPad(signature.DefaultWidth, signature.DefaultHeight),
		profileRepo: profileRepo,
	}
}

// ApplyInput carries a batch of pointer events plus the on-screen size
// of the capture surface at the time they were sampled.
type ApplyInput struct {
	DisplayWidth  float64
	DisplayHeight float64
	Events        []signature.PointerEvent
}

// Apply feeds pointer events through the pad. Whenever an event
// finishes a stroke, the entire accumulated bitmap is serialized into
// the provider profile's signature field. A bare tap finishes a stroke
// without marking anything; it stores nothing.
func (s *SignatureService) Apply(ctx context.Context, input ApplyInput) (signature.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pad.SetDisplaySize(input.DisplayWidth, input.DisplayHeight)

	finished := false
	for _, ev := range input.Events {
		if s.pad.Handle(ev) {
			finished = true
		}
	}

	if finished && !s.pad.Empty() {
		if err := s.storeSignature(ctx); err != nil {
			return s.pad.State(), err
		}
	}
	return s.pad.State(), nil
}

func (s *SignatureService) storeSignature(ctx context.Context) error {
	png, err := s.pad.EncodePNG()
	if err != nil {
		return err
	}

	provider, err := s.profileRepo.Get(ctx)
	if err != nil {
		return err
	}
	provider.Signature = base64.StdEncoding.EncodeToString(png)
	return s.profileRepo.Save(ctx, provider)
}

// Clear wipes the pad bitmap and the stored signature field. Allowed at
// any time, in any pad state.
func (s *SignatureService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pad.Clear()

	provider, err := s.profileRepo.Get(ctx)
	if err != nil {
		return err
	}
	provider.Signature = ""
	return s.profileRepo.Save(ctx, provider)
}

// Empty reports whether anything is drawn on the pad.
func (s *SignatureService) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pad.Empty()
}
