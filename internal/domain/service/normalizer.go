package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malakahq/ledger-engine/internal/domain/model"
	"github.com/malakahq/ledger-engine/internal/domain/valueobject"
)

// Sentinel labels for entries whose account is missing from the chart of
// accounts. A single bad reference must not abort reporting for every
// other account, so such entries keep flowing with substituted labels.
const (
	UnknownAccountCode = "N/A"
	UnknownAccountName = "Unknown Account"
)

// Normalizer turns an unordered batch of ledger entries into the canonical
// general ledger view: a totally ordered sequence annotated with a running
// balance per owning account.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize sorts entries ascending by (transaction date, entry number,
// line number) and folds one running accumulator per account, starting at
// zero. Credit-normal accounts accumulate credit minus debit; debit-normal
// accounts, and accounts missing from the chart, accumulate debit minus
// credit. The inputs are never mutated; the caller's slice order has no
// effect on the result.
func (n *Normalizer) Normalize(accounts []model.Account, entries []model.LedgerEntry) []model.GeneralLedgerLine {
	byID := make(map[uuid.UUID]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID()] = a
	}

	sorted := make([]model.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.TransactionDate().Equal(b.TransactionDate()) {
			return a.TransactionDate().Before(b.TransactionDate())
		}
		if a.EntryNumber() != b.EntryNumber() {
			return a.EntryNumber() < b.EntryNumber()
		}
		return a.LineNumber() < b.LineNumber()
	})

	running := make(map[uuid.UUID]decimal.Decimal, len(byID))
	lines := make([]model.GeneralLedgerLine, 0, len(sorted))
	for _, e := range sorted {
		code, name := UnknownAccountCode, UnknownAccountName
		creditNormal := false
		if acct, ok := byID[e.AccountID()]; ok {
			code, name = acct.Code(), acct.Name()
			creditNormal = acct.NormalSide() == valueobject.NormalSideCredit
		}

		delta := e.DebitAmount().Sub(e.CreditAmount())
		if creditNormal {
			delta = e.CreditAmount().Sub(e.DebitAmount())
		}
		balance := running[e.AccountID()].Add(delta)
		running[e.AccountID()] = balance

		lines = append(lines, model.GeneralLedgerLine{
			EntryID:         e.ID(),
			AccountID:       e.AccountID(),
			AccountCode:     code,
			AccountName:     name,
			JournalEntryID:  e.JournalEntryID(),
			EntryNumber:     e.EntryNumber(),
			LineNumber:      e.LineNumber(),
			TransactionDate: e.TransactionDate(),
			Description:     e.Description(),
			Reference:       e.Reference(),
			DebitAmount:     e.DebitAmount(),
			CreditAmount:    e.CreditAmount(),
			RunningBalance:  balance,
		})
	}
	return lines
}
