package service

import (
	"context"
	"strconv"
	"time"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/insights"
	"onerental-backend/internal/repository"
)

type insightService struct {
	equipmentRepo repository.EquipmentRepository
	bookingRepo   repository.BookingRepository
	dismissalRepo repository.DismissalRepository
}

func NewInsightService(
	equipmentRepo repository.EquipmentRepository,
	bookingRepo repository.BookingRepository,
	dismissalRepo repository.DismissalRepository,
) InsightService {
	return &insightService{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		dismissalRepo: dismissalRepo,
	}
}

func (s *insightService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Insight, error) {
	equipment, err := s.equipmentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	gen := insights.NewGenerator(s.ownerStore(ownerID))
	return gen.Generate(ctx, equipment, bookings, time.Now()), nil
}

func (s *insightService) Snooze(ctx context.Context, ownerID, insightID string) error {
	return insights.NewGenerator(s.ownerStore(ownerID)).Snooze(ctx, insightID, time.Now())
}

func (s *insightService) Dismiss(ctx context.Context, ownerID, insightID string) error {
	return insights.NewGenerator(s.ownerStore(ownerID)).Dismiss(ctx, insightID, time.Now())
}

func (s *insightService) ownerStore(ownerID string) insights.KeyValueStore {
	return &ownerScopedStore{repo: s.dismissalRepo, ownerID: ownerID}
}

// ownerScopedStore adapts the dismissal repository to the generator's
// key-value contract, scoping every key to one owner and mapping values to
// the stored expiry timestamp (epoch milliseconds, matching the generator's
// wire format).
type ownerScopedStore struct {
	repo    repository.DismissalRepository
	ownerID string
}

func (s *ownerScopedStore) Get(ctx context.Context, key string) (string, bool, error) {
	until, ok, err := s.repo.GetUntil(ctx, s.ownerID, key)
	if err != nil || !ok {
		return "", false, err
	}
	return strconv.FormatInt(until.UnixMilli(), 10), true, nil
}

func (s *ownerScopedStore) Set(ctx context.Context, key string, value string) error {
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	return s.repo.SetUntil(ctx, s.ownerID, key, time.UnixMilli(millis))
}
