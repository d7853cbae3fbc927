package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
	"github.com/mundoinsolito/manicura/pkg/psqlbuilder"
)

// appointmentColumns колонки записи вместе с джойнами клиента и услуги
var appointmentColumns = []string{
	"a.id",
	"a.client_id",
	"a.service_id",
	"a.date",
	"a.time",
	"a.status",
	"a.payment_status",
	"a.payment_amount",
	"a.notes",
	"a.created_at",
	"c.name",
	"c.phone",
	"c.cedula",
	"s.name",
	"s.price",
	"s.duration",
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её —
// это закрывает гонку двойного бронирования: usecase создания записи
// выбирает записи дня с блокировкой и вставляет в той же транзакции
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	apt.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_id",
			"service_id",
			"date",
			"time",
			"status",
			"payment_status",
			"payment_amount",
			"notes",
		).
		Values(
			apt.ID,
			apt.ClientID,
			apt.ServiceID,
			apt.Date,
			apt.Time,
			apt.Status,
			apt.PaymentStatus,
			apt.PaymentAmount,
			apt.Notes,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time

	return apt, nil
}

// GetByID получает запись по ID вместе с клиентом и услугой
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectJoined().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := r.scanAppointments(rows)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrAppointmentNotFound
	}

	return appointments[0], nil
}

// GetWithFilter получает записи с гибкой фильтрацией
// По умолчанию отмененные записи исключаются — они не занимают слоты
//
// Внутри транзакции при выборке на конкретную дату добавляется
// FOR UPDATE OF a: usecase создания записи блокирует записи дня,
// чтобы конкурирующие бронирования одного слота отклонялись детерминированно
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectJoined()

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.client_id": *filter.ClientID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"a.date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": string(domain.StatusCancelled)})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	if singleDate {
		selectBuilder = selectBuilder.OrderBy("a.time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("a.date ASC, a.time ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// UpdatePayment обновляет статус и сумму оплаты записи
func (r *Repository) UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, amount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("payment_status", status).
		Set("payment_amount", amount).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdatePayment")
}

// Delete удаляет запись физически
// Используется админом для ошибочно созданных записей; отмена клиента
// идет через UpdateStatus(cancelled), чтобы сохранить историю
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// selectJoined базовый SELECT записей с LEFT JOIN клиента и услуги
func (r *Repository) selectJoined() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("clients c ON c.id = a.client_id").
		LeftJoin("services s ON s.id = a.service_id")
}

// execExpectingRow выполняет запрос и требует хотя бы одну затронутую строку
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		var createdAt sql.NullTime
		var clientName, clientPhone, clientCedula, serviceName sql.NullString
		var servicePrice sql.NullFloat64
		var serviceDuration sql.NullInt64

		err := rows.Scan(
			&apt.ID,
			&apt.ClientID,
			&apt.ServiceID,
			&apt.Date,
			&apt.Time,
			&apt.Status,
			&apt.PaymentStatus,
			&apt.PaymentAmount,
			&apt.Notes,
			&createdAt,
			&clientName,
			&clientPhone,
			&clientCedula,
			&serviceName,
			&servicePrice,
			&serviceDuration,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time

		if clientName.Valid {
			apt.Client = &domain.Client{
				ID:     apt.ClientID,
				Name:   clientName.String,
				Phone:  clientPhone.String,
				Cedula: clientCedula.String,
			}
		}

		if serviceName.Valid {
			apt.Service = &domain.Service{
				ID:       apt.ServiceID,
				Name:     serviceName.String,
				Price:    servicePrice.Float64,
				Duration: int(serviceDuration.Int64),
			}
		}

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
