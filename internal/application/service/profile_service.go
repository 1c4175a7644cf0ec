package service

import (
	"bytes"
	"context"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	"github.com/rodamoinho/recibos-api/internal/domain/repository"
	"github.com/rodamoinho/recibos-api/pkg/apperror"
)

// Logo uploads are normalized to fit these bounds before storage.
const (
	logoMaxWidth  = 600
	logoMaxHeight = 300
)

// ProfileService handles the long-lived provider profile and the
// optional logo image.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile retrieves the stored provider profile.
func (s *ProfileService) GetProfile(ctx context.Context) (entity.Provider, error) {
	return s.profileRepo.Get(ctx)
}

// UpdateProfileInput represents the input for updating the profile.
type UpdateProfileInput struct {
	Name     string
	Document string
	Address  string
	Phone    string
	Email    string
	BankInfo string
}

// UpdateProfile saves the profile, re-masking the document and phone
// from their digit projections. The stored signature is preserved;
// only the signature service touches it.
func (s *ProfileService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (entity.Provider, error) {
	current, err := s.profileRepo.Get(ctx)
	if err != nil {
		return entity.Provider{}, err
	}

	provider := entity.Provider{
		Name:      strings.TrimSpace(input.Name),
		Document:  entity.FormatTaxID(input.Document),
		Address:   strings.TrimSpace(input.Address),
		Phone:     entity.FormatPhone(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		BankInfo:  strings.TrimSpace(input.BankInfo),
		Signature: current.Signature,
	}

	if err := s.profileRepo.Save(ctx, provider); err != nil {
		return entity.Provider{}, err
	}
	return provider, nil
}

// UploadLogo decodes, normalizes and stores the uploaded logo image.
func (s *ProfileService) UploadLogo(ctx context.Context, raw []byte) error {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return apperror.NewBadRequestError("Logo must be a valid image")
	}

	fitted := imaging.Fit(img, logoMaxWidth, logoMaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return err
	}
	return s.profileRepo.SaveLogo(ctx, buf.Bytes())
}

// GetLogo returns the stored logo decoded for rendering, or nil when
// none is stored.
func (s *ProfileService) GetLogo(ctx context.Context) (image.Image, error) {
	raw, err := s.profileRepo.GetLogo(ctx)
	if err != nil || raw == nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GetLogoPNG returns the stored logo bytes, or nil when none is stored.
func (s *ProfileService) GetLogoPNG(ctx context.Context) ([]byte, error) {
	return s.profileRepo.GetLogo(ctx)
}

// RemoveLogo deletes the stored logo.
func (s *ProfileService) RemoveLogo(ctx context.Context) error {
	return s.profileRepo.RemoveLogo(ctx)
}
