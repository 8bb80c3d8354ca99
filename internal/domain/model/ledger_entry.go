package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is one posted line of a journal entry as received from the
// ledger store. Entries are immutable once constructed; the engine only
// derives values (running balances, report rows) onto copies.
//
// Debit and credit amounts are held independently. A balanced line
// normally has exactly one of the two non-zero, but the engine does not
// assume this and sums both sides separately.
type LedgerEntry struct {
	id              uuid.UUID
	companyID       uuid.UUID
	accountID       uuid.UUID
	journalEntryID  uuid.UUID
	entryNumber     string
	lineNumber      int
	transactionDate time.Time
	description     string
	reference       string
	debitAmount     decimal.Decimal
	creditAmount    decimal.Decimal
}

// NewLedgerEntry validates a raw ledger record at the engine boundary.
// Malformed amounts are rejected here, never discovered mid-fold.
func NewLedgerEntry(
	id, companyID, accountID, journalEntryID uuid.UUID,
	entryNumber string,
	lineNumber int,
	transactionDate time.Time,
	description, reference string,
	debitAmount, creditAmount decimal.Decimal,
) (LedgerEntry, error) {
	if id == uuid.Nil {
		return LedgerEntry{}, fmt.Errorf("entry ID is required")
	}
	if companyID == uuid.Nil {
		return LedgerEntry{}, fmt.Errorf("company ID is required")
	}
	if accountID == uuid.Nil {
		return LedgerEntry{}, fmt.Errorf("account ID is required")
	}
	if transactionDate.IsZero() {
		return LedgerEntry{}, fmt.Errorf("transaction date is required")
	}
	if lineNumber <= 0 {
		return LedgerEntry{}, fmt.Errorf("line number must be positive, got %d", lineNumber)
	}
	if debitAmount.IsNegative() {
		return LedgerEntry{}, fmt.Errorf("debit amount must not be negative, got %s", debitAmount)
	}
	if creditAmount.IsNegative() {
		return LedgerEntry{}, fmt.Errorf("credit amount must not be negative, got %s", creditAmount)
	}
	return LedgerEntry{
		id:              id,
		companyID:       companyID,
		accountID:       accountID,
		journalEntryID:  journalEntryID,
		entryNumber:     entryNumber,
		lineNumber:      lineNumber,
		transactionDate: transactionDate,
		description:     description,
		reference:       reference,
		debitAmount:     debitAmount,
		creditAmount:    creditAmount,
	}, nil
}

func (e LedgerEntry) ID() uuid.UUID                 { return e.id }
func (e LedgerEntry) CompanyID() uuid.UUID          { return e.companyID }
func (e LedgerEntry) AccountID() uuid.UUID          { return e.accountID }
func (e LedgerEntry) JournalEntryID() uuid.UUID     { return e.journalEntryID }
func (e LedgerEntry) EntryNumber() string           { return e.entryNumber }
func (e LedgerEntry) LineNumber() int               { return e.lineNumber }
func (e LedgerEntry) TransactionDate() time.Time    { return e.transactionDate }
func (e LedgerEntry) Description() string           { return e.description }
func (e LedgerEntry) Reference() string             { return e.reference }
func (e LedgerEntry) DebitAmount() decimal.Decimal  { return e.debitAmount }
func (e LedgerEntry) CreditAmount() decimal.Decimal { return e.creditAmount }
