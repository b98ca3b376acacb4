package voucher

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/JMP-BookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pqUniqueViolation = "23505"

// Колонки таблицы vouchers в порядке сканирования
var voucherColumns = []string{
	"id",
	"code",
	"description",
	"is_active",
	"discount_type",
	"discount_value",
	"min_order_amount",
	"expiry_date",
	"usage_limit",
	"used_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с vouchers
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория vouchers
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый voucher
// Код хранится в верхнем регистре, уникальность обеспечивает БД
func (r *Repository) Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var minOrder decimal.NullDecimal
	if voucher.MinOrderAmount != nil {
		minOrder = decimal.NullDecimal{Decimal: *voucher.MinOrderAmount, Valid: true}
	}

	query, args, err := psqlbuilder.Insert("vouchers").
		Columns(
			"code",
			"description",
			"is_active",
			"discount_type",
			"discount_value",
			"min_order_amount",
			"expiry_date",
			"usage_limit",
		).
		Values(
			domain.NormalizeVoucherCode(voucher.Code),
			voucher.Description,
			voucher.IsActive,
			voucher.DiscountType,
			voucher.DiscountValue,
			minOrder,
			voucher.ExpiryDate,
			voucher.UsageLimit,
		).
		Suffix("RETURNING id, code, used_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&voucher.ID,
		&voucher.Code,
		&voucher.UsedCount,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	voucher.CreatedAt = createdAt.Time
	voucher.UpdatedAt = updatedAt.Time

	return voucher, nil
}

// GetByCode получает voucher по коду (код нормализуется)
// Возвращаемое состояние - снимок на момент чтения: used_count может
// продвинуться параллельно, для погашения использовать RedeemIfEligible
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(voucherColumns...).
		From("vouchers").
		Where(squirrel.Eq{"code": domain.NormalizeVoucherCode(code)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	voucher, err := scanVoucher(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVoucherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan voucher: %v", ErrScanRow, err)
	}

	return voucher, nil
}

// List получает список vouchers с опциональной фильтрацией по активности
func (r *Repository) List(ctx context.Context, isActive *bool, limit, offset uint64) ([]*domain.Voucher, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(voucherColumns...).
		From("vouchers").
		OrderBy("created_at DESC")

	if isActive != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": *isActive})
	}
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit).Offset(offset)
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

	vouchers := make([]*domain.Voucher, 0)
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan voucher: %v", ErrScanRow, err)
		}
		vouchers = append(vouchers, voucher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrExecQuery, err)
	}

	return vouchers, nil
}

// Count возвращает количество vouchers с опциональной фильтрацией по активности
func (r *Repository) Count(ctx context.Context, isActive *bool) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("vouchers")
	if isActive != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": *isActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// VoucherUpdate изменяемые поля voucher, nil-поля не трогаются
type VoucherUpdate struct {
	Description    *string
	IsActive       *bool
	DiscountType   *domain.DiscountType
	DiscountValue  *decimal.Decimal
	MinOrderAmount *decimal.Decimal
	ExpiryDate     *time.Time
	UsageLimit     *int64
}

// Update обновляет voucher по коду
// used_count через Update изменить нельзя - только через RedeemIfEligible
func (r *Repository) Update(ctx context.Context, code string, update VoucherUpdate) (*domain.Voucher, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("vouchers").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": domain.NormalizeVoucherCode(code)})

	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
	}
	if update.DiscountType != nil {
		updateBuilder = updateBuilder.Set("discount_type", *update.DiscountType)
	}
	if update.DiscountValue != nil {
		updateBuilder = updateBuilder.Set("discount_value", *update.DiscountValue)
	}
	if update.MinOrderAmount != nil {
		updateBuilder = updateBuilder.Set("min_order_amount", *update.MinOrderAmount)
	}
	if update.ExpiryDate != nil {
		updateBuilder = updateBuilder.Set("expiry_date", *update.ExpiryDate)
	}
	if update.UsageLimit != nil {
		updateBuilder = updateBuilder.Set("usage_limit", *update.UsageLimit)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + joinColumns(voucherColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	voucher, err := scanVoucher(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVoucherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan voucher: %v", ErrScanRow, err)
	}

	return voucher, nil
}

// Delete удаляет voucher по коду
func (r *Repository) Delete(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vouchers").
		Where(squirrel.Eq{"code": domain.NormalizeVoucherCode(code)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrVoucherNotFound
	}

	return nil
}

// RedeemIfEligible атомарно инкрементирует used_count, если voucher
// всё ещё пригоден к погашению на момент записи.
//
// Проверка и инкремент выполняются одним условным UPDATE, поэтому два
// конкурентных погашения не могут оба пройти по устаревшему снимку:
// ранее вычисленная котировка не даёт права на скидку, право даёт только
// этот UPDATE. Ноль затронутых строк означает, что voucher перестал быть
// пригодным (деактивирован, истёк или лимит исчерпан) - ErrNotEligible.
func (r *Repository) RedeemIfEligible(ctx context.Context, code string, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vouchers").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": domain.NormalizeVoucherCode(code)}).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Or{
			squirrel.Eq{"expiry_date": nil},
			squirrel.GtOrEq{"expiry_date": now},
		}).
		Where(squirrel.Or{
			squirrel.Eq{"usage_limit": nil},
			squirrel.Expr("used_count < usage_limit"),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RedeemIfEligible - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RedeemIfEligible - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RedeemIfEligible - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotEligible
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

func joinColumns(columns []string) string {
	result := ""
	for i, c := range columns {
		if i > 0 {
			result += ", "
		}
		result += c
	}
	return result
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVoucher сканирует одну строку таблицы vouchers
func scanVoucher(row rowScanner) (*domain.Voucher, error) {
	var (
		voucher              domain.Voucher
		minOrder             decimal.NullDecimal
		usageLimit           sql.NullInt64
		expiryDate           sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&voucher.ID,
		&voucher.Code,
		&voucher.Description,
		&voucher.IsActive,
		&voucher.DiscountType,
		&voucher.DiscountValue,
		&minOrder,
		&expiryDate,
		&usageLimit,
		&voucher.UsedCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if minOrder.Valid {
		voucher.MinOrderAmount = &minOrder.Decimal
	}
	if expiryDate.Valid {
		t := expiryDate.Time
		voucher.ExpiryDate = &t
	}
	if usageLimit.Valid {
		v := usageLimit.Int64
		voucher.UsageLimit = &v
	}
	voucher.CreatedAt = createdAt.Time
	voucher.UpdatedAt = updatedAt.Time

	return &voucher, nil
}
