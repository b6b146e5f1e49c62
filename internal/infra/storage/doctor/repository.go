package doctor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/pkg/dbmetrics"
	"github.com/dentwise/booking-service/pkg/psqlbuilder"
)

var doctorColumns = []string{
	"id",
	"name",
	"specialty",
	"bio",
	"gender",
	"email",
	"phone",
	"area",
	"image_url",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с врачами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового врача
func (r *Repository) Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("doctors").
		Columns(
			"id",
			"name",
			"specialty",
			"bio",
			"gender",
			"email",
			"phone",
			"area",
			"image_url",
			"is_active",
		).
		Values(
			doctor.ID,
			doctor.Name,
			doctor.Specialty,
			doctor.Bio,
			doctor.Gender,
			doctor.Email,
			doctor.Phone,
			doctor.Area,
			doctor.ImageURL,
			doctor.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	doctor.CreatedAt = createdAt.Time
	doctor.UpdatedAt = updatedAt.Time

	return doctor, nil
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	doctor, err := scanDoctorRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan doctor: %v", ErrScanRow, err)
	}

	return doctor, nil
}

// ListActive получает активных врачей с количеством занимающих слот записей
// Сортировка по имени - порядок карточек в UI выбора врача
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupying[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"d.id",
		"d.name",
		"d.specialty",
		"d.bio",
		"d.gender",
		"d.email",
		"d.phone",
		"d.area",
		"d.image_url",
		"d.is_active",
		"d.created_at",
		"d.updated_at",
		"COUNT(a.id) AS appointment_count",
	).
		From("doctors d").
		LeftJoin("appointments a ON a.doctor_id = d.id AND a.status = ANY(?)", pq.Array(occupying)).
		Where(squirrel.Eq{"d.is_active": true}).
		GroupBy("d.id").
		OrderBy("d.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		var doctor domain.Doctor
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Specialty,
			&doctor.Bio,
			&doctor.Gender,
			&doctor.Email,
			&doctor.Phone,
			&doctor.Area,
			&doctor.ImageURL,
			&doctor.IsActive,
			&createdAt,
			&updatedAt,
			&doctor.AppointmentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		doctor.CreatedAt = createdAt.Time
		doctor.UpdatedAt = updatedAt.Time

		doctors = append(doctors, &doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// ListAll получает всех врачей, отсортированных по дате создания
// Порядок важен для чистки дублей: оставляем самую старую запись
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		doctor, err := scanDoctorRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// Exists проверяет наличие врача с такими именем и email
// Используется сидером для защиты от повторного импорта CSV
func (r *Repository) Exists(ctx context.Context, name, email string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("doctors").
		Where("LOWER(name) = LOWER(?) AND LOWER(email) = LOWER(?)", name, email).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Delete удаляет врача (физическое удаление, только для чистки дублей)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

func scanDoctorRow(row *sql.Row) (*domain.Doctor, error) {
	var doctor domain.Doctor
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Bio,
		&doctor.Gender,
		&doctor.Email,
		&doctor.Phone,
		&doctor.Area,
		&doctor.ImageURL,
		&doctor.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	doctor.CreatedAt = createdAt.Time
	doctor.UpdatedAt = updatedAt.Time

	return &doctor, nil
}

func scanDoctorRows(rows *sql.Rows) (*domain.Doctor, error) {
	var doctor domain.Doctor
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Bio,
		&doctor.Gender,
		&doctor.Email,
		&doctor.Phone,
		&doctor.Area,
		&doctor.ImageURL,
		&doctor.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	doctor.CreatedAt = createdAt.Time
	doctor.UpdatedAt = updatedAt.Time

	return &doctor, nil
}
