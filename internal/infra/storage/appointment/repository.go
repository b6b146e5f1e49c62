package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/pkg/dbmetrics"
	"github.com/dentwise/booking-service/pkg/psqlbuilder"
	"github.com/dentwise/booking-service/pkg/types"
)

const uniqueViolationCode = "23505"

var appointmentColumns = []string{
	"id",
	"user_id",
	"doctor_id",
	"appointment_date",
	"start_time",
	"reason",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на прием
// Если в контексте передана активная транзакция (через context.Value), использует её.
// При создании внутри сериализуемой транзакции с предварительной проверкой занятости
// слота гонка исключена; уникальный индекс (doctor_id, date, time) страхует
// от двойного бронирования при прямых вставках
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"user_id",
			"doctor_id",
			"appointment_date",
			"start_time",
			"reason",
			"status",
		).
		Values(
			appointment.ID,
			appointment.UserID,
			appointment.DoctorID,
			appointment.Date,
			appointment.StartTime,
			appointment.Reason,
			appointment.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// CreateBatch создает несколько записей одним запросом, пропуская дубликаты слотов
// Используется сидером демо-данных; возвращает число реально вставленных строк
func (r *Repository) CreateBatch(ctx context.Context, appointments []*domain.Appointment) (int64, error) {
	if len(appointments) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"user_id",
			"doctor_id",
			"appointment_date",
			"start_time",
			"reason",
			"status",
		)

	for _, a := range appointments {
		id := a.ID
		if id == "" {
			id = uuid.NewString()
		}
		insertBuilder = insertBuilder.Values(
			id,
			a.UserID,
			a.DoctorID,
			a.Date,
			a.StartTime,
			a.Reason,
			a.Status,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appointment domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&appointment.UserID,
		&appointment.DoctorID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.Reason,
		&appointment.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

// GetByUserID получает список записей пользователя
// Опционально фильтрует по статусу; сортировка - сначала ближайшие будущие
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("appointment_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByDoctorWithFilter получает записи врача с гибкой фильтрацией
// Поддерживает фильтрацию по дню, статусу и включению отмененных записей
func (r *Repository) GetByDoctorWithFilter(ctx context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"doctor_id": filter.DoctorID})

	// Фильтрация по дню (если указан)
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// FindBookedTimes возвращает занятые токены времени врача на указанный день
// Учитываются только записи с перечисленными статусами; порядок - по времени
func (r *Repository) FindBookedTimes(
	ctx context.Context,
	doctorID string,
	date time.Time,
	statuses []domain.AppointmentStatus,
) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("start_time").
		From("appointments").
		Where(squirrel.Eq{
			"doctor_id":        doctorID,
			"appointment_date": date,
			"status":           statusStrings,
		}).
		OrderBy("start_time ASC")

	// Внутри транзакции блокируем найденные строки до её завершения -
	// это путь usecase создания записи, блокировка защищает от двойного бронирования
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: FindBookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CompletePastConfirmed переводит подтвержденные записи прошедших дней в completed
// Используется фоновой задачей; возвращает число обновленных записей
func (r *Repository) CompletePastConfirmed(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"appointment_date": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompletePastConfirmed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePastConfirmed - execute update: %v", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePastConfirmed - get rows affected: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// ReassignDoctor переносит записи с одного врача на другого
// Используется при чистке дублей, чтобы не потерять историю записей
func (r *Repository) ReassignDoctor(ctx context.Context, fromDoctorID, toDoctorID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("doctor_id", toDoctorID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"doctor_id": fromDoctorID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ReassignDoctor - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReassignDoctor - execute update: %v", ErrExecQuery, err)
	}

	moved, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ReassignDoctor - get rows affected: %v", ErrExecQuery, err)
	}

	return moved, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appointment domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appointment.ID,
			&appointment.UserID,
			&appointment.DoctorID,
			&appointment.Date,
			&appointment.StartTime,
			&appointment.Reason,
			&appointment.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appointment.CreatedAt = createdAt.Time
		appointment.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
