package cashboxrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

const dayColumns = `date, opening_usd, opening_lbp, cash_in_usd, cash_in_lbp, cash_out_usd, cash_out_lbp, closing_usd, closing_lbp, notes`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDay(row pgx.Row) (*domain.CashboxDaily, error) {
	var day domain.CashboxDaily
	err := row.Scan(
		&day.Date,
		&day.Opening.USD, &day.Opening.LBP,
		&day.CashIn.USD, &day.CashIn.LBP,
		&day.CashOut.USD, &day.CashOut.LBP,
		&day.Closing.USD, &day.Closing.LBP,
		&day.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// ApplyDelta adds the delta to the row for date, creating it with a zero opening if needed.
// The closing is recomputed by the same statement so concurrent cash events never overwrite each other.
func (r *Repository) ApplyDelta(ctx context.Context, date time.Time, delta domain.CashboxDelta, note string) (*domain.CashboxDaily, error) {
	query := `
        INSERT INTO cashbox_daily (date, cash_in_usd, cash_in_lbp, cash_out_usd, cash_out_lbp, closing_usd, closing_lbp, notes)
        VALUES ($1, $2, $3, $4, $5, $2::numeric - $4::numeric, $3::numeric - $5::numeric, $6)
        ON CONFLICT (date) DO UPDATE SET
            cash_in_usd = cashbox_daily.cash_in_usd + EXCLUDED.cash_in_usd,
            cash_in_lbp = cashbox_daily.cash_in_lbp + EXCLUDED.cash_in_lbp,
            cash_out_usd = cashbox_daily.cash_out_usd + EXCLUDED.cash_out_usd,
            cash_out_lbp = cashbox_daily.cash_out_lbp + EXCLUDED.cash_out_lbp,
            closing_usd = cashbox_daily.opening_usd + cashbox_daily.cash_in_usd + EXCLUDED.cash_in_usd
                - cashbox_daily.cash_out_usd - EXCLUDED.cash_out_usd,
            closing_lbp = cashbox_daily.opening_lbp + cashbox_daily.cash_in_lbp + EXCLUDED.cash_in_lbp
                - cashbox_daily.cash_out_lbp - EXCLUDED.cash_out_lbp,
            notes = CASE
                WHEN EXCLUDED.notes = '' THEN cashbox_daily.notes
                WHEN cashbox_daily.notes = '' THEN EXCLUDED.notes
                ELSE cashbox_daily.notes || E'\n' || EXCLUDED.notes
            END
        RETURNING ` + dayColumns
	day, err := scanDay(r.db.QueryRow(ctx, query,
		date, delta.CashIn.USD, delta.CashIn.LBP, delta.CashOut.USD, delta.CashOut.LBP, note,
	))
	if err != nil {
		zap.L().Error("can't apply cashbox delta", zap.Time("date", date), zap.Error(err))
		return nil, err
	}
	return day, nil
}

func (r *Repository) GetDay(ctx context.Context, date time.Time) (*domain.CashboxDaily, error) {
	query := `SELECT ` + dayColumns + ` FROM cashbox_daily WHERE date = $1`
	day, err := scanDay(r.db.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get cashbox day", zap.Time("date", date), zap.Error(err))
		return nil, err
	}
	return day, nil
}

// CarryForward sets the opening of date to the closing of the latest earlier day.
func (r *Repository) CarryForward(ctx context.Context, date time.Time) (*domain.CashboxDaily, error) {
	query := `
        INSERT INTO cashbox_daily (date, opening_usd, opening_lbp, closing_usd, closing_lbp)
        SELECT $1::date, COALESCE(prev.closing_usd, 0), COALESCE(prev.closing_lbp, 0),
               COALESCE(prev.closing_usd, 0), COALESCE(prev.closing_lbp, 0)
        FROM (SELECT 1) AS one
        LEFT JOIN LATERAL (
            SELECT closing_usd, closing_lbp
            FROM cashbox_daily
            WHERE date < $1::date
            ORDER BY date DESC
            LIMIT 1
        ) prev ON TRUE
        ON CONFLICT (date) DO UPDATE SET
            opening_usd = EXCLUDED.opening_usd,
            opening_lbp = EXCLUDED.opening_lbp,
            closing_usd = EXCLUDED.opening_usd + cashbox_daily.cash_in_usd - cashbox_daily.cash_out_usd,
            closing_lbp = EXCLUDED.opening_lbp + cashbox_daily.cash_in_lbp - cashbox_daily.cash_out_lbp
        RETURNING ` + dayColumns
	day, err := scanDay(r.db.QueryRow(ctx, query, date))
	if err != nil {
		zap.L().Error("can't carry cashbox forward", zap.Time("date", date), zap.Error(err))
		return nil, err
	}
	return day, nil
}
