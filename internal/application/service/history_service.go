package service

import (
	"context"
	"errors"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	"github.com/rodamoinho/recibos-api/internal/domain/repository"
	"github.com/rodamoinho/recibos-api/pkg/apperror"
)

// HistoryService exposes the finalized receipt history.
type HistoryService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(historyRepo repository.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// List returns finalized receipts, most recent first.
func (s *HistoryService) List(ctx context.Context) ([]entity.Receipt, error) {
	receipts, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if receipts == nil {
		receipts = []entity.Receipt{}
	}
	return receipts, nil
}

// Remove deletes exactly the receipt with the given number.
func (s *HistoryService) Remove(ctx context.Context, number string) error {
	err := s.historyRepo.Remove(ctx, number)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return apperror.NewNotFoundError("Receipt " + number)
	}
	return err
}
