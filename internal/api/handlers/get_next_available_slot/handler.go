package get_next_available_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dentwise/booking-service/internal/api/handlers"
	getNextSlot "github.com/dentwise/booking-service/internal/usecase/get_next_slot"
)

const (
	msgInvalidRequest = "некорректные параметры запроса"
	msgInvalidDays    = "некорректное значение days"
	msgDoctorNotFound = "врач не найден"
)

type Handler struct {
	useCase GetNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase GetNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/next-available-slot
// Query params: days (optional, горизонт поиска в днях)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["doctorId"]

	// Извлекаем days из query параметров (опционально)
	horizonDays := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			h.logger.Warn("GET /doctors/{id}/next-available-slot - Invalid days: %q", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		horizonDays = days
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getNextSlot.Request{
		DoctorID:    doctorID,
		HorizonDays: horizonDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, getNextSlot.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/next-available-slot - Invalid input: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getNextSlot.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/next-available-slot - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		default:
			h.logger.Error("GET /doctors/{id}/next-available-slot - Failed to find slot: doctor_id=%s, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Исчерпанный горизонт - не ошибка, отвечаем 200 с found=false
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /doctors/{id}/next-available-slot - Search finished: doctor_id=%s, found=%v",
		doctorID, result.Found)
	handlers.RespondJSON(w, http.StatusOK, response)
}
