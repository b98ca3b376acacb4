package rates

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/JMP-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий настроек тарифов
// Таблица pricing_settings хранит одну актуальную строку тарифов,
// редактируемую из админки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает актуальные тарифы
// Если админ ещё не сохранял тарифы, возвращает ErrRatesNotFound -
// сервис в этом случае использует дефолтные значения
func (r *Repository) Get(ctx context.Context) (*domain.PricingRates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"adult_rate",
		"child_rate",
		"spectator_rate",
		"extra_hour_rate",
		"gst_rate",
		"created_at",
		"updated_at",
	).
		From("pricing_settings").
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		rates                domain.PricingRates
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rates.ID,
		&rates.AdultRate,
		&rates.ChildRate,
		&rates.SpectatorRate,
		&rates.ExtraHourRate,
		&rates.GSTRate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRatesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan rates: %v", ErrScanRow, err)
	}

	rates.CreatedAt = createdAt.Time
	rates.UpdatedAt = updatedAt.Time

	return &rates, nil
}

// Upsert сохраняет тарифы
// Единственная строка настроек перезаписывается по фиксированному id=1
func (r *Repository) Upsert(ctx context.Context, rates *domain.PricingRates) (*domain.PricingRates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_settings").
		Columns(
			"id",
			"adult_rate",
			"child_rate",
			"spectator_rate",
			"extra_hour_rate",
			"gst_rate",
		).
		Values(
			1,
			rates.AdultRate,
			rates.ChildRate,
			rates.SpectatorRate,
			rates.ExtraHourRate,
			rates.GSTRate,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			adult_rate = EXCLUDED.adult_rate,
			child_rate = EXCLUDED.child_rate,
			spectator_rate = EXCLUDED.spectator_rate,
			extra_hour_rate = EXCLUDED.extra_hour_rate,
			gst_rate = EXCLUDED.gst_rate,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rates.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	rates.CreatedAt = createdAt.Time
	rates.UpdatedAt = updatedAt.Time

	return rates, nil
}
