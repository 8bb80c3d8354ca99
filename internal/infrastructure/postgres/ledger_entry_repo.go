package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/malakahq/ledger-engine/internal/domain/model"
	"github.com/malakahq/ledger-engine/internal/domain/port"
)

// Compile-time interface check
var _ port.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implements LedgerEntryRepository using PostgreSQL.
type LedgerEntryRepo struct {
	pool *pgxpool.Pool
}

func NewLedgerEntryRepo(pool *pgxpool.Pool) *LedgerEntryRepo {
	return &LedgerEntryRepo{pool: pool}
}

// ListByCompany loads the full ledger for a company in one query.
// Rows pass through model.NewLedgerEntry, so malformed stored amounts
// surface as a fetch error instead of corrupting an aggregation run.
func (r *LedgerEntryRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, account_id, journal_entry_id, entry_number, line_number,
		       transaction_date, description, reference, debit_amount, credit_amount
		FROM general_ledger
		WHERE company_id = $1
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("query general ledger: %w", err)
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		var (
			id              uuid.UUID
			cid             uuid.UUID
			accountID       uuid.UUID
			journalEntryID  uuid.UUID
			entryNumber     string
			lineNumber      int
			transactionDate time.Time
			description     string
			reference       string
			debitAmount     decimal.Decimal
			creditAmount    decimal.Decimal
		)
		if err := rows.Scan(&id, &cid, &accountID, &journalEntryID, &entryNumber, &lineNumber,
			&transactionDate, &description, &reference, &debitAmount, &creditAmount); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		entry, err := model.NewLedgerEntry(id, cid, accountID, journalEntryID, entryNumber, lineNumber,
			transactionDate, description, reference, debitAmount, creditAmount)
		if err != nil {
			return nil, fmt.Errorf("ledger entry %s: %w", id, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}
