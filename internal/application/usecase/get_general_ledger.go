package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malakahq/ledger-engine/internal/application/dto"
	"github.com/malakahq/ledger-engine/internal/domain/model"
	"github.com/malakahq/ledger-engine/internal/domain/port"
	"github.com/malakahq/ledger-engine/internal/domain/service"
)

// GetGeneralLedger retrieves the normalized general ledger view: every
// entry in canonical order with running balances, optionally restricted to
// one account.
type GetGeneralLedger struct {
	accountRepo port.AccountRepository
	entryRepo   port.LedgerEntryRepository
	normalizer  *service.Normalizer
}

func NewGetGeneralLedger(
	accountRepo port.AccountRepository,
	entryRepo port.LedgerEntryRepository,
	normalizer *service.Normalizer,
) *GetGeneralLedger {
	return &GetGeneralLedger{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		normalizer:  normalizer,
	}
}

// Execute fetches both inputs concurrently and normalizes the ledger. The
// per-account restriction is applied after the fold, so running balances
// are always computed over the full ledger. Totals cover the returned
// lines.
func (uc *GetGeneralLedger) Execute(ctx context.Context, req dto.GetGeneralLedgerRequest) (dto.GeneralLedgerResponse, error) {
	if req.CompanyID == uuid.Nil {
		return dto.GeneralLedgerResponse{}, fmt.Errorf("company ID is required")
	}

	accounts, entries, err := fetchLedgerSnapshot(ctx, uc.accountRepo, uc.entryRepo, req.CompanyID)
	if err != nil {
		return dto.GeneralLedgerResponse{}, err
	}

	lines := uc.normalizer.Normalize(accounts, entries)
	if req.AccountID != uuid.Nil {
		filtered := make([]model.GeneralLedgerLine, 0, len(lines))
		for _, line := range lines {
			if line.AccountID == req.AccountID {
				filtered = append(filtered, line)
			}
		}
		lines = filtered
	}

	return toGeneralLedgerResponse(lines), nil
}

func toGeneralLedgerResponse(lines []model.GeneralLedgerLine) dto.GeneralLedgerResponse {
	responses := make([]dto.GeneralLedgerLineResponse, 0, len(lines))
	totalDebits, totalCredits := decimal.Zero, decimal.Zero
	for _, line := range lines {
		totalDebits = totalDebits.Add(line.DebitAmount)
		totalCredits = totalCredits.Add(line.CreditAmount)
		responses = append(responses, dto.GeneralLedgerLineResponse{
			EntryID:         line.EntryID,
			AccountID:       line.AccountID,
			AccountCode:     line.AccountCode,
			AccountName:     line.AccountName,
			JournalEntryID:  line.JournalEntryID,
			EntryNumber:     line.EntryNumber,
			LineNumber:      line.LineNumber,
			TransactionDate: line.TransactionDate,
			Description:     line.Description,
			Reference:       line.Reference,
			DebitAmount:     line.DebitAmount,
			CreditAmount:    line.CreditAmount,
			RunningBalance:  line.RunningBalance,
		})
	}
	return dto.GeneralLedgerResponse{
		Lines:        responses,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
	}
}
