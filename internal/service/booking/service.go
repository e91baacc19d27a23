package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bos/internal/domain"
	"github.com/vladislavdragonenkov/bos/internal/metrics"
)

// Service реализует use case бронирования комнат поверх доменного репозитория.
type Service struct {
	repo    domain.BookingRepository
	metrics *metrics.BookingMetrics
	logger  *log.Entry
}

// NewService конструирует сервис с зависимостями.
// metrics может быть nil — тогда счётчики не обновляются.
func NewService(repo domain.BookingRepository, bookingMetrics *metrics.BookingMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "booking-service")
	}
	return &Service{
		repo:    repo,
		metrics: bookingMetrics,
		logger:  logger,
	}
}

// CreateBooking проверяет бизнес-правила и сохраняет бронирование.
// Порядок проверок фиксирован: сначала дешёвая проверка длительности,
// затем линейный скан существующих бронирований на пересечение.
func (s *Service) CreateBooking(_ context.Context, roomID int64, customerName string, startDate, endDate time.Time) (domain.Booking, error) {
	booking, err := domain.NewBooking(roomID, customerName, startDate, endDate)
	if err != nil {
		s.recordRejected(metrics.RejectReasonInvalidDuration)
		s.logger.WithFields(log.Fields{
			"room_id": roomID,
			"start":   startDate.Format(time.DateOnly),
			"end":     endDate.Format(time.DateOnly),
		}).WithError(err).Info("booking rejected")
		return domain.Booking{}, err
	}

	for _, existing := range s.repo.ListAll() {
		if booking.Overlaps(existing) {
			s.recordRejected(metrics.RejectReasonRoomUnavailable)
			s.logger.WithFields(log.Fields{
				"room_id":     roomID,
				"conflict_id": existing.ID,
			}).Info("booking rejected: room unavailable")
			return domain.Booking{}, domain.ErrRoomUnavailable
		}
	}

	stored, err := s.repo.Save(booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("save booking: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordBookingCreated(stored.DurationDays())
	}
	s.logger.WithFields(log.Fields{
		"booking_id": stored.ID,
		"room_id":    stored.RoomID,
		"nights":     stored.DurationDays(),
	}).Info("booking created")

	return stored, nil
}

// GetBooking возвращает бронирование по идентификатору.
func (s *Service) GetBooking(_ context.Context, id int64) (domain.Booking, error) {
	booking, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return domain.Booking{}, err
		}
		return domain.Booking{}, fmt.Errorf("get booking %d: %w", id, err)
	}
	return booking, nil
}

// ListBookings возвращает все бронирования в порядке создания.
func (s *Service) ListBookings(_ context.Context) []domain.Booking {
	return s.repo.ListAll()
}

func (s *Service) recordRejected(reason string) {
	if s.metrics != nil {
		s.metrics.RecordBookingRejected(reason)
	}
}
