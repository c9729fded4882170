package service

import (
	"context"
	"log/slog"

	"github.com/ritikas/giftpool/internal/models"
	"github.com/ritikas/giftpool/internal/sse"
	"github.com/ritikas/giftpool/internal/storage"
)

// PaymentService manages the shared payment-info singleton.
type PaymentService struct {
	store storage.Store
	hub   *sse.Hub
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(store storage.Store, hub *sse.Hub) *PaymentService {
	return &PaymentService{store: store, hub: hub}
}

// Get retrieves the payment info. Returns nil, nil until an organizer has
// set it; absence is not an error.
func (s *PaymentService) Get(ctx context.Context) (*models.PaymentInfo, error) {
	info, err := s.store.GetPaymentInfo(ctx)
	if err != nil {
		slog.Error("GetPaymentInfo failed", "error", err)
		return nil, err
	}
	return info, nil
}

// Set overwrites the payment info wholesale. Organizer operation.
func (s *PaymentService) Set(ctx context.Context, info models.PaymentInfo) error {
	slog.Info("Set payment info request", "method", info.Method)

	if err := s.store.SetPaymentInfo(ctx, info); err != nil {
		slog.Error("SetPaymentInfo failed", "error", err)
		return err
	}

	slog.Info("Payment info updated", "method", info.Method)
	s.hub.Broadcast(sse.Snapshot{Collection: sse.CollectionPaymentInfo, Data: info})
	return nil
}
