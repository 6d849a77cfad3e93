package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	"github.com/tripmates/trip_planner_app/internal/core/domain"
	portsrepo "github.com/tripmates/trip_planner_app/internal/core/ports/repositories"
	"github.com/tripmates/trip_planner_app/internal/utils/pagination"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense and split data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryWithTx {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryWithTx
var _ portsrepo.ExpenseRepositoryWithTx = (*PgxExpenseRepository)(nil)

const expenseSelectColumns = `
	e.expense_id, e.trip_id, e.payer_id, e.amount, e.description, e.category,
	e.expense_date, e.split_type,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
`

const splitInsertQuery = `
	INSERT INTO expense_splits (expense_id, participant_id, amount_owed, paid)
	VALUES ($1, $2, $3, $4);
`

// SaveExpense inserts the expense row and all of its splits within one
// database transaction, so a failed split insert leaves no partial expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits

	expenseQuery := `
		INSERT INTO expenses (
			expense_id, trip_id, payer_id, amount, description, category,
			expense_date, split_type,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, expenseQuery,
		expense.ExpenseID,
		expense.TripID,
		expense.PayerID,
		expense.Amount,
		expense.Description,
		expense.Category,
		expense.ExpenseDate,
		expense.SplitType,
		expense.CreatedAt,
		expense.CreatedBy,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("expense ID " + expense.ExpenseID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("trip or payer does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to insert expense "+expense.ExpenseID, err)
	}

	if err := insertSplits(ctx, tx, expense.ExpenseID, expense.Splits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateExpense rewrites the expense row and replaces its splits within one
// database transaction.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	expenseQuery := `
		UPDATE expenses
		SET payer_id = $1, amount = $2, description = $3, category = $4,
		    expense_date = $5, split_type = $6, last_updated_at = $7, last_updated_by = $8
		WHERE expense_id = $9;
	`
	cmdTag, err := tx.Exec(ctx, expenseQuery,
		expense.PayerID,
		expense.Amount,
		expense.Description,
		expense.Category,
		expense.ExpenseDate,
		expense.SplitType,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
		expense.ExpenseID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+expense.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM expense_splits WHERE expense_id = $1;`, expense.ExpenseID); err != nil {
		return apperrors.NewAppError(500, "failed to clear splits for expense "+expense.ExpenseID, err)
	}

	if err := insertSplits(ctx, tx, expense.ExpenseID, expense.Splits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertSplits queues all split rows for an expense as a single batch.
func insertSplits(ctx context.Context, tx pgx.Tx, expenseID string, splits []domain.ExpenseSplit) error {
	batch := &pgx.Batch{}
	for _, split := range splits {
		batch.Queue(splitInsertQuery,
			expenseID,
			split.ParticipantID,
			split.AmountOwed,
			split.Paid,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("split participant does not exist")
		}
		return apperrors.NewAppError(500, "failed to insert splits for expense "+expenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	// expense_splits rows go with the expense via ON DELETE CASCADE
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT` + expenseSelectColumns + `FROM expenses e WHERE e.expense_id = $1;`
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense "+expenseID, err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Expense])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect expense rows", err)
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNotFound
	}

	expense := expenses[0]
	splits, err := r.findSplitsByExpenseID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits
	return &expense, nil
}

func (r *PgxExpenseRepository) findSplitsByExpenseID(ctx context.Context, expenseID string) ([]domain.ExpenseSplit, error) {
	query := `
		SELECT expense_id, participant_id, amount_owed, paid
		FROM expense_splits
		WHERE expense_id = $1
		ORDER BY participant_id;
	`
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query splits for expense "+expenseID, err)
	}
	defer rows.Close()

	splits, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ExpenseSplit])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect split rows", err)
	}
	return splits, nil
}

// ListExpensesByTrip retrieves a paginated list of expenses for a trip using token-based pagination.
// It returns the expenses (splits included), a token for the next page, and an error.
func (r *PgxExpenseRepository) ListExpensesByTrip(ctx context.Context, tripID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT` + expenseSelectColumns + `FROM expenses e`
	filterClause := `WHERE e.trip_id = $1`
	// Ordering is crucial and must be stable.
	// We use expense_date DESC, and created_at DESC as a tie-breaker.
	orderByClause := `ORDER BY e.expense_date DESC, e.created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{tripID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison is concise and efficient in Postgres
		cursorClause := `AND (e.expense_date, e.created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)

		query := baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query expenses for trip "+tripID, err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Expense])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to collect expense rows for trip "+tripID, err)
	}

	var nextTokenVal *string
	results := expenses
	if len(expenses) > limit {
		// The token points to the last item included in this response page.
		lastExpense := expenses[limit-1]
		newToken := pagination.EncodeToken(lastExpense.ExpenseDate, lastExpense.CreatedAt)
		nextTokenVal = &newToken
		results = expenses[:limit]
	}

	if err := r.attachSplits(ctx, tripID, results); err != nil {
		return nil, nil, err
	}

	return results, nextTokenVal, nil
}

// attachSplits loads all splits for the listed expenses in one query.
func (r *PgxExpenseRepository) attachSplits(ctx context.Context, tripID string, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	ids := make([]string, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ExpenseID
	}

	query := `
		SELECT expense_id, participant_id, amount_owed, paid
		FROM expense_splits
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, participant_id;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query splits for trip "+tripID, err)
	}
	defer rows.Close()

	splits, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ExpenseSplit])
	if err != nil {
		return apperrors.NewAppError(500, "failed to collect split rows for trip "+tripID, err)
	}

	byExpense := make(map[string][]domain.ExpenseSplit, len(expenses))
	for _, s := range splits {
		byExpense[s.ExpenseID] = append(byExpense[s.ExpenseID], s)
	}
	for i := range expenses {
		expenses[i].Splits = byExpense[expenses[i].ExpenseID]
	}
	return nil
}

// ListAllExpensesByTrip retrieves every expense of a trip without splits.
func (r *PgxExpenseRepository) ListAllExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error) {
	query := `SELECT` + expenseSelectColumns + `FROM expenses e WHERE e.trip_id = $1 ORDER BY e.expense_date, e.created_at;`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses for trip "+tripID, err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Expense])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect expense rows for trip "+tripID, err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) ListSplitsByTrip(ctx context.Context, tripID string) ([]domain.ExpenseSplit, error) {
	query := `
		SELECT s.expense_id, s.participant_id, s.amount_owed, s.paid
		FROM expense_splits s
		JOIN expenses e ON s.expense_id = e.expense_id
		WHERE e.trip_id = $1
		ORDER BY s.expense_id, s.participant_id;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query splits for trip "+tripID, err)
	}
	defer rows.Close()

	splits, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ExpenseSplit])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect split rows for trip "+tripID, err)
	}
	return splits, nil
}
