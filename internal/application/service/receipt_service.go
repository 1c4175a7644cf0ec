package service

import (
	"bytes"
	"context"
	"image"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	"github.com/rodamoinho/recibos-api/internal/domain/repository"
	"github.com/rodamoinho/recibos-api/internal/domain/validation"
	"github.com/rodamoinho/recibos-api/pkg/apperror"
	"github.com/rodamoinho/recibos-api/pkg/document"
	"github.com/rodamoinho/recibos-api/pkg/enhance"
	"github.com/rodamoinho/recibos-api/pkg/share"
)

// ReceiptService orchestrates drafting, validation, export and
// finalization of receipts.
type ReceiptService struct {
	profileRepo repository.ProfileRepository
	historyRepo repository.HistoryRepository
	sequence    repository.SequenceRepository
	exporter    *document.Exporter
	sharer      share.Sharer
	enhancer    enhance.Enhancer

	// exporting guards against re-invoking export while one is in
	// flight; everything else stays editable meanwhile.
	exporting atomic.Bool
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	profileRepo repository.ProfileRepository,
	historyRepo repository.HistoryRepository,
	sequence repository.SequenceRepository,
	exporter *document.Exporter,
	sharer share.Sharer,
	enhancer enhance.Enhancer,
) *ReceiptService {
	return &ReceiptService{
		profileRepo: profileRepo,
		historyRepo: historyRepo,
		sequence:    sequence,
		exporter:    exporter,
		sharer:      sharer,
		enhancer:    enhancer,
	}
}

// ItemInput is one line item as submitted by the client.
type ItemInput struct {
	ID          string
	Description string
	Value       decimal.Decimal
}

// DraftInput is the editable state of a receipt as submitted by the
// client. The provider is not part of it: the draft references the
// live persisted profile until finalization snapshots it.
type DraftInput struct {
	Date       string // "2006-01-02"; empty means today
	City       string
	PayerIndex int
	Items      []ItemInput
	Discount   decimal.Decimal
	TaxRate    decimal.Decimal
}

// NewDraft returns a fresh draft dated today, used by explicit resets.
// Finalize never resets the draft on its own.
func (s *ReceiptService) NewDraft(ctx context.Context) (entity.Draft, error) {
	draft := entity.NewDraft(time.Now())
	provider, err := s.profileRepo.Get(ctx)
	if err != nil {
		return entity.Draft{}, err
	}
	draft.Provider = provider
	draft.Items[0].ID = uuid.New().String()
	return draft, nil
}

// buildDraft merges the submitted state with the live provider profile.
func (s *ReceiptService) buildDraft(ctx context.Context, input DraftInput) (entity.Draft, error) {
	provider, err := s.profileRepo.Get(ctx)
	if err != nil {
		return entity.Draft{}, err
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return entity.Draft{}, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		city = entity.DefaultCity
	}

	items := make([]entity.LineItem, len(input.Items))
	for i, item := range input.Items {
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}
		items[i] = entity.LineItem{ID: id, Description: item.Description, Value: item.Value}
	}

	return entity.Draft{
		Date:       date,
		City:       city,
		PayerIndex: input.PayerIndex,
		Provider:   provider,
		Items:      items,
		Discount:   input.Discount,
		TaxRate:    input.TaxRate,
	}, nil
}

// Totals computes the financial summary for the submitted draft state.
func (s *ReceiptService) Totals(input DraftInput) entity.Totals {
	items := make([]entity.LineItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.LineItem{Value: item.Value}
	}
	return entity.ComputeTotals(items, input.Discount, input.TaxRate)
}

// ExportResult is the outcome of a preview or finalize export.
type ExportResult struct {
	Receipt    entity.Receipt
	FileName   string
	PDF        []byte
	Shared     bool
	MailtoLink string // set when the share channel was unavailable or failed
}

// validateAndSnapshot gates the draft and assembles the finalized
// record under the next identifier, without committing anything.
func (s *ReceiptService) validateAndSnapshot(ctx context.Context, input DraftInput) (entity.Receipt, error) {
	draft, err := s.buildDraft(ctx, input)
	if err != nil {
		return entity.Receipt{}, err
	}

	if errs := validation.Validate(draft); len(errs) > 0 {
		return entity.Receipt{}, apperror.NewValidationError(errs)
	}

	payer, ok := entity.PayerByIndex(draft.PayerIndex)
	if !ok {
		return entity.Receipt{}, apperror.NewBadRequestError("Unknown payer")
	}

	number, err := s.sequence.Next(ctx)
	if err != nil {
		return entity.Receipt{}, err
	}

	totals := entity.ComputeTotals(draft.Items, draft.Discount, draft.TaxRate)
	return draft.Finalize(number, payer, totals), nil
}

// export renders and assembles the document, then attempts delivery
// through the share channel with the download + mailto fallback.
func (s *ReceiptService) export(ctx context.Context, receipt entity.Receipt) (*ExportResult, error) {
	logo, err := s.logoImage(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Ignoring stored logo")
	}

	artifact, err := s.exporter.Export(receipt, logo)
	if err != nil {
		logrus.WithError(err).Error("Receipt export failed")
		return nil, apperror.ErrRender
	}

	result := &ExportResult{
		Receipt:  receipt,
		FileName: artifact.FileName,
		PDF:      artifact.PDF,
	}

	if s.sharer.Available() {
		if err := s.sharer.Share(share.Attachment{
			FileName: artifact.FileName,
			Data:     artifact.PDF,
			Subject:  artifact.Subject,
			Body:     artifact.Body,
		}); err != nil {
			// Share failures are non-fatal: fall back to the direct
			// download plus a prefilled mail link.
			logrus.WithError(err).Warn("Share channel failed, falling back to download")
			result.MailtoLink = share.MailtoLink(artifact.Subject, artifact.Body)
		} else {
			result.Shared = true
		}
	} else {
		result.MailtoLink = share.MailtoLink(artifact.Subject, artifact.Body)
	}

	return result, nil
}

func (s *ReceiptService) logoImage(ctx context.Context) (img image.Image, err error) {
	raw, err := s.profileRepo.GetLogo(ctx)
	if err != nil || raw == nil {
		return nil, err
	}
	img, _, err = image.Decode(bytes.NewReader(raw))
	return img, err
}

// Preview exports the draft under the upcoming identifier without
// advancing the counter or touching history.
func (s *ReceiptService) Preview(ctx context.Context, input DraftInput) (*ExportResult, error) {
	if !s.exporting.CompareAndSwap(false, true) {
		return nil, apperror.ErrExportInFlight
	}
	defer s.exporting.Store(false)

	receipt, err := s.validateAndSnapshot(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, receipt)
}

// Finalize validates the draft, exports the document and only then
// advances the counter and appends to history. A failed validation or
// render leaves both untouched so the attempt can be retried.
func (s *ReceiptService) Finalize(ctx context.Context, input DraftInput) (*ExportResult, error) {
	if !s.exporting.CompareAndSwap(false, true) {
		return nil, apperror.ErrExportInFlight
	}
	defer s.exporting.Store(false)

	receipt, err := s.validateAndSnapshot(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := s.export(ctx, receipt)
	if err != nil {
		return nil, err
	}

	// Commit and append run after a successful export. A crash between
	// the two can lose one of them; this is an accepted failure mode of
	// the single-session design.
	if err := s.sequence.Commit(ctx, receipt.Number); err != nil {
		return nil, err
	}
	if err := s.historyRepo.Append(ctx, receipt); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"number": receipt.Number,
		"net":    receipt.Totals.Net.StringFixed(2),
	}).Info("Receipt finalized")

	return result, nil
}

// EnhanceDescription rewrites an item description through the optional
// external capability. Failure never alters the original text.
func (s *ReceiptService) EnhanceDescription(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperror.NewBadRequestError("Description is empty")
	}

	enhanced, err := s.enhancer.Enhance(ctx, text)
	if err != nil {
		logrus.WithError(err).Warn("Description enhancement failed")
		return "", apperror.ErrEnhancement
	}
	return enhanced, nil
}
