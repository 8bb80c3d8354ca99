package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/malakahq/ledger-engine/internal/domain/model"
)

// AccountRepository is the read-only chart-of-accounts collaborator.
type AccountRepository interface {
	// ListByCompany returns the active chart of accounts for a company.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Account, error)
}

// LedgerEntryRepository is the read-only ledger store collaborator. The
// engine expects the full relevant entry set in one retrieval; it performs
// no pagination of its own.
type LedgerEntryRepository interface {
	// ListByCompany returns all posted ledger entries for a company.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.LedgerEntry, error)
}
