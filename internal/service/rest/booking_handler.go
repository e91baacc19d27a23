package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bos/internal/domain"
	"github.com/vladislavdragonenkov/bos/internal/service/booking"
)

// BookingHandler реализует HTTP API поверх сервиса бронирований.
type BookingHandler struct {
	service *booking.Service
	logger  *log.Entry
}

// NewBookingHandler конструирует обработчик с зависимостями.
func NewBookingHandler(service *booking.Service, logger *log.Entry) *BookingHandler {
	if logger == nil {
		logger = log.New().WithField("component", "booking-api")
	}
	return &BookingHandler{
		service: service,
		logger:  logger,
	}
}

// bookingRequest — тело POST /bookings. Даты в формате YYYY-MM-DD.
type bookingRequest struct {
	RoomID       int64  `json:"room_id"`
	CustomerName string `json:"customer_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type bookingResponse struct {
	ID           int64  `json:"id"`
	RoomID       int64  `json:"room_id"`
	CustomerName string `json:"customer_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func mapBookingToResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		CustomerName: b.CustomerName,
		StartDate:    b.StartDate.Format(time.DateOnly),
		EndDate:      b.EndDate.Format(time.DateOnly),
	}
}

// CreateBooking обрабатывает POST /bookings.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", "end_date must be YYYY-MM-DD")
		return
	}

	created, err := h.service.CreateBooking(r.Context(), req.RoomID, req.CustomerName, startDate, endDate)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapBookingToResponse(created))
}

// ListBookings обрабатывает GET /bookings.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.service.ListBookings(r.Context())
	writeJSON(w, http.StatusOK, lo.Map(bookings, func(b domain.Booking, _ int) bookingResponse {
		return mapBookingToResponse(b)
	}))
}

// GetBooking обрабатывает GET /bookings/{id}.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "booking id must be an integer")
		return
	}

	found, err := h.service.GetBooking(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapBookingToResponse(found))
}

// writeDomainError транслирует доменную ошибку в HTTP-статус:
// ошибки валидации — 4xx, отсутствие сущности — 404, остальное — 500.
func (h *BookingHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDuration):
		writeError(w, http.StatusBadRequest, "invalid_duration", err.Error())
	case errors.Is(err, domain.ErrRoomUnavailable):
		writeError(w, http.StatusConflict, "room_unavailable", err.Error())
	case domain.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case domain.IsValidation(err):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.logger.WithField("request_id", GetRequestID(r.Context())).WithError(err).Error("internal error")
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
