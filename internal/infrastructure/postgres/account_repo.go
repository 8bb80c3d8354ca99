package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malakahq/ledger-engine/internal/domain/model"
	"github.com/malakahq/ledger-engine/internal/domain/port"
	"github.com/malakahq/ledger-engine/internal/domain/valueobject"
)

// Compile-time interface check
var _ port.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implements AccountRepository using PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, account_code, account_name, account_type
		FROM chart_of_accounts
		WHERE company_id = $1 AND is_active
		ORDER BY account_code
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("query chart of accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var (
			id          uuid.UUID
			cid         uuid.UUID
			code        string
			name        string
			accountType string
		)
		if err := rows.Scan(&id, &cid, &code, &name, &accountType); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		at, err := valueobject.NewAccountType(accountType)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", id, err)
		}
		account, err := model.NewAccount(id, cid, code, name, at)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", id, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, nil
}
