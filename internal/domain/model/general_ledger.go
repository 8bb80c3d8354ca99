package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeneralLedgerLine is a ledger entry prepared for the general ledger
// view: account labels resolved and the running balance attached. It is a
// derived, disposable value, recomputed on demand.
type GeneralLedgerLine struct {
	EntryID         uuid.UUID
	AccountID       uuid.UUID
	AccountCode     string
	AccountName     string
	JournalEntryID  uuid.UUID
	EntryNumber     string
	LineNumber      int
	TransactionDate time.Time
	Description     string
	Reference       string
	DebitAmount     decimal.Decimal
	CreditAmount    decimal.Decimal
	RunningBalance  decimal.Decimal
}
