package api

import (
	"net/http"

	"rentacar/internal/apperr"
	"rentacar/internal/service"

	"github.com/sirupsen/logrus"
)

type VehicleHandler struct {
	Service  *service.VehicleService
	Bookings *service.BookingService
	Log      *logrus.Logger
}

func NewVehicleHandler(svc *service.VehicleService, bookings *service.BookingService, log *logrus.Logger) *VehicleHandler {
	return &VehicleHandler{Service: svc, Bookings: bookings, Log: log}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := identity(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	var req VehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}

	vehicle, err := h.Service.Create(ident, service.CreateVehicleParams{
		VehicleName:        req.VehicleName,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		DailyRentPrice:     req.DailyRentPrice,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusCreated, "vehicle created successfully", toVehicleResponse(vehicle))
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.List()
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	resp := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		resp = append(resp, toVehicleResponse(&vehicles[i]))
	}
	writeData(w, http.StatusOK, "", resp)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	vehicle, err := h.Service.Get(id)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "", toVehicleResponse(vehicle))
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}

	vehicle, err := h.Service.Update(ident, id, service.UpdateVehicleParams{
		VehicleName:        req.VehicleName,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		DailyRentPrice:     req.DailyRentPrice,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "vehicle updated successfully", toVehicleResponse(vehicle))
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.Delete(ident, id); err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "vehicle deleted successfully", nil)
}

// Availability reports whether a vehicle is free for an inclusive date
// range given as ?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD.
func (h *VehicleHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	startRaw := r.URL.Query().Get("start_date")
	endRaw := r.URL.Query().Get("end_date")
	if startRaw == "" || endRaw == "" {
		writeError(w, h.Log, apperr.New(apperr.KindInvalidRange, "start_date and end_date are required"))
		return
	}
	start, err := parseDate(startRaw, "start_date")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	end, err := parseDate(endRaw, "end_date")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	available, err := h.Bookings.Availability(id, start, end)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeData(w, http.StatusOK, "", AvailabilityResponse{
		VehicleID: id,
		StartDate: startRaw,
		EndDate:   endRaw,
		Available: available,
	})
}
