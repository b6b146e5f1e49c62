package get_next_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/internal/usecase/get_available_slots"
)

// UseCase use case для поиска ближайшего свободного слота врача
type UseCase struct {
	slotsResolver SlotsResolver
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsResolver SlotsResolver,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsResolver: slotsResolver,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute выполняет поиск ближайшего свободного слота в пределах горизонта.
// Дни просматриваются по порядку начиная с req.From, выходные пропускаются
// без обращения к резолверу. Первый день с непустым списком слотов выигрывает,
// внутри дня берется самый ранний слот. Исчерпание горизонта - не ошибка:
// возвращается Response с Found=false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetNextSlot: validation failed: %v", err)
		return nil, err
	}

	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = domain.DefaultHorizonDays
	}

	from := req.From
	if from.IsZero() {
		from = uc.timeProvider.Now()
	}
	from = domain.NormalizeDate(from)

	uc.logger.Info("GetNextSlot: doctor=%s, from=%s, horizon=%d days",
		req.DoctorID, from.Format(domain.DateFormat), horizon)

	for i := 0; i < horizon; i++ {
		day := from.AddDate(0, 0, i)

		// Выходные пропускаем сразу, у них заведомо пустая сетка
		if !domain.IsWorkday(day) {
			continue
		}

		resp, err := uc.slotsResolver.Execute(ctx, &get_available_slots.Request{
			DoctorID: req.DoctorID,
			Date:     day,
		})
		if err != nil {
			if errors.Is(err, get_available_slots.ErrDoctorNotFound) {
				return nil, ErrDoctorNotFound
			}
			if errors.Is(err, get_available_slots.ErrInvalidInput) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("GetNextSlot: resolver failed for doctor=%s, date=%s: %v",
				req.DoctorID, day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
		}

		if len(resp.Slots) == 0 {
			continue
		}

		slot := resp.Slots[0]
		formattedTime, err := slot.Format12Hour()
		if err != nil {
			uc.logger.Error("GetNextSlot: malformed slot %q for doctor=%s: %v", slot, req.DoctorID, err)
			return nil, fmt.Errorf("%w: malformed slot: %v", ErrInternal, err)
		}

		uc.logger.Info("GetNextSlot: doctor=%s: found slot %s on %s",
			req.DoctorID, slot, day.Format(domain.DateFormat))

		return &Response{
			Found:         true,
			Date:          day,
			StartTime:     slot,
			FormattedDate: day.Format(domain.DisplayDateFormat),
			FormattedTime: formattedTime,
		}, nil
	}

	uc.logger.Info("GetNextSlot: doctor=%s: no free slots within %d days from %s",
		req.DoctorID, horizon, from.Format(domain.DateFormat))

	return &Response{Found: false}, nil
}
