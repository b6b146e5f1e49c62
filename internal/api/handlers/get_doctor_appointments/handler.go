package get_doctor_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dentwise/booking-service/internal/api/handlers"
	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/internal/service/appointments"
	"github.com/dentwise/booking-service/internal/service/appointments/models"
	"github.com/google/uuid"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus   = "некорректный статус"
	msgDoctorNotFound  = "врач не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/appointments
// Query params: date (optional), status (optional), includeCancelled (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["doctorId"]

	if _, err := uuid.Parse(doctorID); err != nil {
		h.logger.Warn("GET /doctors/{id}/appointments - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	req := &models.GetDoctorAppointmentsRequest{DoctorID: doctorID}

	// Извлекаем date из query параметров (опционально)
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /doctors/{id}/appointments - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	// Извлекаем status из query параметров (опционально)
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	// Извлекаем includeCancelled из query параметров (опционально)
	if includeStr := r.URL.Query().Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err == nil {
			req.IncludeCancelled = include
		}
	}

	result, err := h.service.GetDoctorAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/appointments - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/appointments - Invalid status: doctor_id=%s", doctorID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /doctors/{id}/appointments - Failed to get appointments: doctor_id=%s, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/appointments - Appointments retrieved successfully: doctor_id=%s, count=%d",
		doctorID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
