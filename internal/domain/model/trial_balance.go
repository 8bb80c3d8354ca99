package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is the derived trial balance position of one account as
// of a period end.
//
// ClosingBalance is always debit-positive (debit total minus credit
// total) regardless of the account's normal side. TrialBalanceDebit and
// TrialBalanceCredit are the presentation columns; at most one of the two
// is non-zero, and a contra balance (an account carrying a balance on its
// abnormal side) switches columns instead of going negative.
type TrialBalanceRow struct {
	AccountID          uuid.UUID
	AccountCode        string
	AccountName        string
	AccountType        string
	OpeningBalance     decimal.Decimal
	DebitTotal         decimal.Decimal
	CreditTotal        decimal.Decimal
	ClosingBalance     decimal.Decimal
	TrialBalanceDebit  decimal.Decimal
	TrialBalanceCredit decimal.Decimal
}

// TrialBalanceSummary verifies the balanced-book invariant across all rows.
// An unbalanced summary is reportable data, not an error: detecting
// bookkeeping inconsistency is a primary purpose of the report.
type TrialBalanceSummary struct {
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Difference   decimal.Decimal
	IsBalanced   bool
}

// TrialBalanceReport aggregates the rows and summary for a period. It is a
// pure, disposable value: recomputed on demand and never persisted.
type TrialBalanceReport struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	GeneratedAt time.Time
	Rows        []TrialBalanceRow
	Summary     TrialBalanceSummary
}
