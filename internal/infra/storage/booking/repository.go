package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/JMP-BookingService/pkg/psqlbuilder"
)

// Колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"reference",
	"type",
	"name",
	"email",
	"phone",
	"booking_date",
	"start_time",
	"duration_minutes",
	"adults",
	"kids",
	"spectators",
	"subtotal",
	"gst",
	"discount_amount",
	"total_amount",
	"deposit_amount",
	"voucher_code",
	"booking_status",
	"payment_status",
	"waiver_status",
	"qr_payload",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Суммы записываются ровно в том виде, в каком их посчитал pricing engine -
// репозиторий ничего не пересчитывает.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var deposit decimal.NullDecimal
	if booking.DepositAmount != nil {
		deposit = decimal.NullDecimal{Decimal: *booking.DepositAmount, Valid: true}
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"type",
			"name",
			"email",
			"phone",
			"booking_date",
			"start_time",
			"duration_minutes",
			"adults",
			"kids",
			"spectators",
			"subtotal",
			"gst",
			"discount_amount",
			"total_amount",
			"deposit_amount",
			"voucher_code",
			"booking_status",
			"payment_status",
			"waiver_status",
			"qr_payload",
		).
		Values(
			booking.Reference,
			booking.Type,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.Date,
			booking.StartTime,
			booking.DurationMinutes,
			booking.Adults,
			booking.Kids,
			booking.Spectators,
			booking.Subtotal,
			booking.GST,
			booking.DiscountAmount,
			booking.TotalAmount,
			deposit,
			booking.VoucherCode,
			booking.BookingStatus,
			booking.PaymentStatus,
			booking.WaiverStatus,
			booking.QRPayload,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией и пагинацией
// Фильтры (все опциональные): тип, статус, дата, поиск по имени/email/телефону
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings"), filter).
		OrderBy("created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// Count возвращает количество бронирований, подходящих под фильтр
// Используется для пагинации списков
func (r *Repository) Count(ctx context.Context, filter domain.BookingsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("bookings"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// Cancel отменяет бронирование
// Статус меняется только если бронирование ещё можно отменить (PENDING/CONFIRMED)
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"booking_status": []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatuses обновляет статусы бронирования (booking/payment/waiver)
// nil-поля не изменяются
func (r *Repository) UpdateStatuses(
	ctx context.Context,
	id int64,
	bookingStatus *domain.BookingStatus,
	paymentStatus *domain.PaymentStatus,
	waiverStatus *domain.WaiverStatus,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if bookingStatus != nil {
		updateBuilder = updateBuilder.Set("booking_status", *bookingStatus)
	}
	if paymentStatus != nil {
		updateBuilder = updateBuilder.Set("payment_status", *paymentStatus)
	}
	if waiverStatus != nil {
		updateBuilder = updateBuilder.Set("waiver_status", *waiverStatus)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatuses - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatuses - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatuses - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// applyFilter добавляет условия фильтрации в SELECT
func applyFilter(builder squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"booking_status": *filter.Status})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}
	if !filter.IncludeCancelled {
		builder = builder.Where(squirrel.NotEq{"booking_status": domain.StatusCancelled})
	}
	return builder
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку таблицы bookings
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		deposit              decimal.NullDecimal
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.Type,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.Date,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.Adults,
		&booking.Kids,
		&booking.Spectators,
		&booking.Subtotal,
		&booking.GST,
		&booking.DiscountAmount,
		&booking.TotalAmount,
		&deposit,
		&booking.VoucherCode,
		&booking.BookingStatus,
		&booking.PaymentStatus,
		&booking.WaiverStatus,
		&booking.QRPayload,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if deposit.Valid {
		booking.DepositAmount = &deposit.Decimal
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
