package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuildTrialBalanceRequest is the input DTO for trial balance generation.
// PeriodStart is echoed on the report; aggregation is cumulative as of
// PeriodEnd.
type BuildTrialBalanceRequest struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	CompanyID   uuid.UUID
}

// TrialBalanceRowResponse is one account's position in the trial balance.
type TrialBalanceRowResponse struct {
	AccountID          uuid.UUID       `json:"account_id"`
	AccountCode        string          `json:"account_code"`
	AccountName        string          `json:"account_name"`
	AccountType        string          `json:"account_type"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	DebitTotal         decimal.Decimal `json:"debit_total"`
	CreditTotal        decimal.Decimal `json:"credit_total"`
	ClosingBalance     decimal.Decimal `json:"closing_balance"`
	TrialBalanceDebit  decimal.Decimal `json:"trial_balance_debit"`
	TrialBalanceCredit decimal.Decimal `json:"trial_balance_credit"`
}

// TrialBalanceSummaryResponse carries the balanced-book check result.
type TrialBalanceSummaryResponse struct {
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	Difference   decimal.Decimal `json:"difference_amount"`
	IsBalanced   bool            `json:"is_balanced"`
}

// TrialBalanceResponse is the output DTO for trial balance generation.
type TrialBalanceResponse struct {
	PeriodStart time.Time                   `json:"period_start"`
	PeriodEnd   time.Time                   `json:"period_end"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Accounts    []TrialBalanceRowResponse   `json:"accounts"`
	Summary     TrialBalanceSummaryResponse `json:"summary"`
}

// GetGeneralLedgerRequest is the input DTO for the general ledger view.
// AccountID restricts the returned lines to one account when set;
// uuid.Nil returns the whole ledger.
type GetGeneralLedgerRequest struct {
	CompanyID uuid.UUID
	AccountID uuid.UUID
}

// GeneralLedgerLineResponse is one annotated ledger line.
type GeneralLedgerLineResponse struct {
	EntryID         uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	AccountCode     string          `json:"account_code"`
	AccountName     string          `json:"account_name"`
	JournalEntryID  uuid.UUID       `json:"journal_entry_id"`
	EntryNumber     string          `json:"entry_number"`
	LineNumber      int             `json:"line_number"`
	TransactionDate time.Time       `json:"transaction_date"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	DebitAmount     decimal.Decimal `json:"debit_amount"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	RunningBalance  decimal.Decimal `json:"running_balance"`
}

// GeneralLedgerResponse is the output DTO for the general ledger view.
// Totals cover the returned lines.
type GeneralLedgerResponse struct {
	Lines        []GeneralLedgerLineResponse `json:"data"`
	TotalDebits  decimal.Decimal             `json:"total_debits"`
	TotalCredits decimal.Decimal             `json:"total_credits"`
}
