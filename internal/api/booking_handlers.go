package api

import (
	"net/http"

	"rentacar/internal/service"

	"github.com/sirupsen/logrus"
)

type BookingHandler struct {
	Service *service.BookingService
	Log     *logrus.Logger
}

func NewBookingHandler(svc *service.BookingService, log *logrus.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Log: log}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := identity(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	var req CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	booking, err := h.Service.Create(ident, service.CreateBookingParams{
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusCreated, "booking created successfully", toBookingResponse(booking))
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, err := identity(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	bookings, err := h.Service.List(ident)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	resp := make([]BookingDetailsResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingDetailsResponse(&bookings[i]))
	}
	writeData(w, http.StatusOK, "", resp)
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident, err := identity(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	var req UpdateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}

	booking, err := h.Service.Transition(ident, id, req.Status)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "booking status updated", toBookingResponse(booking))
}
