package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malakahq/ledger-engine/internal/domain/model"
	"github.com/malakahq/ledger-engine/internal/domain/valueobject"
)

// unknownAccountType marks trial balance rows whose account is missing
// from the chart of accounts. Such rows classify on the credit-normal rule.
const unknownAccountType = "OTHER"

// balanceTolerance absorbs rounding noise when comparing the debit and
// credit column totals.
var balanceTolerance = decimal.NewFromFloat(0.01)

// TrialBalanceBuilder derives a trial balance report from the chart of
// accounts and the raw ledger.
//
// Reports are cumulative as of the period end: the period start is echoed
// on the report but opening balances are always zero, so every closing
// balance covers activity since inception. Downstream consumers depend on
// this behavior.
type TrialBalanceBuilder struct{}

func NewTrialBalanceBuilder() *TrialBalanceBuilder {
	return &TrialBalanceBuilder{}
}

// Build filters entries to the period end (inclusive), totals debits and
// credits per account, classifies each closing balance into the debit or
// credit column according to the account's normal side, and checks that
// the two column totals agree within tolerance.
//
// Every chart account produces a row, including accounts with zero
// activity. Entries referencing accounts missing from the chart produce
// sentinel-labelled rows so their amounts still reach the summary.
func (b *TrialBalanceBuilder) Build(
	accounts []model.Account,
	entries []model.LedgerEntry,
	period valueobject.ReportingPeriod,
) model.TrialBalanceReport {
	groups := make(map[uuid.UUID][]model.LedgerEntry)
	for _, e := range entries {
		if !period.OnOrBeforeEnd(e.TransactionDate()) {
			continue
		}
		groups[e.AccountID()] = append(groups[e.AccountID()], e)
	}

	rows := make([]model.TrialBalanceRow, 0, len(accounts))
	for _, acct := range accounts {
		debitNormal := acct.NormalSide() == valueobject.NormalSideDebit
		rows = append(rows, buildRow(acct.ID(), acct.Code(), acct.Name(), acct.Type().String(), debitNormal, groups[acct.ID()]))
		delete(groups, acct.ID())
	}
	for accountID, group := range groups {
		rows = append(rows, buildRow(accountID, UnknownAccountCode, UnknownAccountName, unknownAccountType, false, group))
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AccountCode != rows[j].AccountCode {
			return rows[i].AccountCode < rows[j].AccountCode
		}
		return rows[i].AccountID.String() < rows[j].AccountID.String()
	})

	totalDebits, totalCredits := decimal.Zero, decimal.Zero
	for _, row := range rows {
		totalDebits = totalDebits.Add(row.TrialBalanceDebit)
		totalCredits = totalCredits.Add(row.TrialBalanceCredit)
	}
	difference := totalDebits.Sub(totalCredits).Abs()

	return model.TrialBalanceReport{
		PeriodStart: period.Start(),
		PeriodEnd:   period.End(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
		Summary: model.TrialBalanceSummary{
			TotalDebits:  totalDebits,
			TotalCredits: totalCredits,
			Difference:   difference,
			IsBalanced:   difference.LessThan(balanceTolerance),
		},
	}
}

func buildRow(
	accountID uuid.UUID,
	code, name, accountType string,
	debitNormal bool,
	group []model.LedgerEntry,
) model.TrialBalanceRow {
	debitTotal, creditTotal := decimal.Zero, decimal.Zero
	for _, e := range group {
		debitTotal = debitTotal.Add(e.DebitAmount())
		creditTotal = creditTotal.Add(e.CreditAmount())
	}
	closing := debitTotal.Sub(creditTotal)

	// Normal-side classification. A balance on the abnormal side moves to
	// the opposite column as a positive amount rather than printing
	// negative (contra presentation).
	tbDebit, tbCredit := decimal.Zero, decimal.Zero
	if debitNormal {
		if closing.IsNegative() {
			tbCredit = closing.Abs()
		} else {
			tbDebit = closing
		}
	} else {
		if closing.Sign() > 0 {
			tbDebit = closing
		} else {
			tbCredit = closing.Abs()
		}
	}

	return model.TrialBalanceRow{
		AccountID:          accountID,
		AccountCode:        code,
		AccountName:        name,
		AccountType:        accountType,
		OpeningBalance:     decimal.Zero,
		DebitTotal:         debitTotal,
		CreditTotal:        creditTotal,
		ClosingBalance:     closing,
		TrialBalanceDebit:  tbDebit,
		TrialBalanceCredit: tbCredit,
	}
}
