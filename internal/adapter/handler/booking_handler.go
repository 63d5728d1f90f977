package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type createBookingRequest struct {
	UserID  string   `json:"user_id"`
	ShowID  string   `json:"show_id"`
	SeatIDs []string `json:"seat_ids"`
}

type bookingResponse struct {
	BookingID string   `json:"booking_id"`
	UserID    string   `json:"user_id"`
	ShowID    string   `json:"show_id"`
	SeatIDs   []string `json:"seat_ids"`
	Status    string   `json:"status"`
	Amount    float64  `json:"amount"`
}

type confirmBookingRequest struct {
	PaymentType string `json:"payment_type"`
}

type seatResponse struct {
	SeatID    string  `json:"seat_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.UserID == "" || req.ShowID == "" || len(req.SeatIDs) == 0 {
		writeError(w, http.StatusBadRequest, "user_id, show_id and seat_ids are required")
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), req.UserID, req.ShowID, req.SeatIDs)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req confirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	paymentType := domain.PaymentType(req.PaymentType)
	if !paymentType.IsValid() {
		writeError(w, http.StatusBadRequest, "unsupported payment type")
		return
	}

	booking, err := h.svc.ConfirmBooking(r.Context(), bookingID, paymentType)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) GetShowSeats(w http.ResponseWriter, r *http.Request) {
	availability, err := h.svc.SeatAvailability(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]seatResponse, 0, len(availability))
	for _, sa := range availability {
		out = append(out, seatResponse{
			SeatID:    sa.Seat.ID,
			Type:      string(sa.Seat.Type),
			Price:     sa.Seat.Price,
			Available: sa.Available,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		BookingID: b.ID.String(),
		UserID:    b.UserID,
		ShowID:    b.ShowID,
		SeatIDs:   b.SeatIDs,
		Status:    string(b.Status),
		Amount:    b.Amount,
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	var (
		unavailable *domain.SeatUnavailableError
		unknown     *domain.UnknownSeatError
	)
	switch {
	case errors.As(err, &unavailable):
		writeError(w, http.StatusConflict, unavailable.Error())
	case errors.As(err, &unknown):
		writeError(w, http.StatusBadRequest, unknown.Error())
	case errors.Is(err, domain.ErrInvalidBookingState):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPaymentFailed):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
