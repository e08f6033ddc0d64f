package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_budget_app/internal/models"
	"github.com/SscSPs/travel_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const fullExpenseSelectQuery = `
SELECT
	e.expense_id, e.trip_id, e.amount, e.local_currency, e.converted_amount, e.rates_as_of_ns,
	e.category, e.note, e.expense_date_ns,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM expenses e
`

func (r *PgxExpenseRepository) getExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, fullExpenseSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect expense rows", err)
	}
	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (
			expense_id, trip_id, amount, local_currency, converted_amount, rates_as_of_ns,
			category, note, expense_date_ns,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.TripID, m.Amount, m.LocalCurrency, m.ConvertedAmount, m.RatesAsOfNs,
		m.Category, m.Note, m.ExpenseDateNs,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return apperrors.NewConflictError("expense ID " + expense.ExpenseID + " already exists")
			case "23503": // foreign_key_violation
				return apperrors.NewNotFoundError("trip " + expense.TripID + " not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expenses, err := r.getExpenses(ctx, `WHERE e.expense_id = $1`, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.NewNotFoundError("expense " + expenseID + " not found")
	}
	return &expenses[0], nil
}

func (r *PgxExpenseRepository) ListExpensesByTripID(ctx context.Context, tripID string, limit int) ([]domain.Expense, error) {
	filter := `WHERE e.trip_id = $1 ORDER BY e.expense_date_ns DESC, e.created_at DESC, e.expense_id`
	if limit > 0 {
		return r.getExpenses(ctx, filter+` LIMIT $2`, tripID, limit)
	}
	return r.getExpenses(ctx, filter, tripID)
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses SET
			amount = $2, local_currency = $3, converted_amount = $4, rates_as_of_ns = $5,
			category = $6, note = $7, expense_date_ns = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.Amount, m.LocalCurrency, m.ConvertedAmount, m.RatesAsOfNs,
		m.Category, m.Note, m.ExpenseDateNs,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expense.ExpenseID + " not found")
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expenseID + " not found")
	}
	return nil
}
