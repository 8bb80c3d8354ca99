package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/malakahq/ledger-engine/internal/application/dto"
	"github.com/malakahq/ledger-engine/internal/domain/model"
	"github.com/malakahq/ledger-engine/internal/domain/port"
	"github.com/malakahq/ledger-engine/internal/domain/service"
	"github.com/malakahq/ledger-engine/internal/domain/valueobject"
)

// BuildTrialBalance generates a trial balance report for a company and
// reporting period.
type BuildTrialBalance struct {
	accountRepo port.AccountRepository
	entryRepo   port.LedgerEntryRepository
	builder     *service.TrialBalanceBuilder
}

func NewBuildTrialBalance(
	accountRepo port.AccountRepository,
	entryRepo port.LedgerEntryRepository,
	builder *service.TrialBalanceBuilder,
) *BuildTrialBalance {
	return &BuildTrialBalance{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		builder:     builder,
	}
}

// Execute validates the period, fetches the chart of accounts and the
// ledger concurrently, and runs the builder. Either fetch failing aborts
// the whole computation: a trial balance built from a partial ledger is
// misleading rather than merely incomplete, so the caller never receives
// an apparently-balanced report from unavailable data.
func (uc *BuildTrialBalance) Execute(ctx context.Context, req dto.BuildTrialBalanceRequest) (dto.TrialBalanceResponse, error) {
	if req.CompanyID == uuid.Nil {
		return dto.TrialBalanceResponse{}, fmt.Errorf("company ID is required")
	}
	period, err := valueobject.NewReportingPeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return dto.TrialBalanceResponse{}, fmt.Errorf("invalid reporting period: %w", err)
	}

	accounts, entries, err := fetchLedgerSnapshot(ctx, uc.accountRepo, uc.entryRepo, req.CompanyID)
	if err != nil {
		return dto.TrialBalanceResponse{}, err
	}

	report := uc.builder.Build(accounts, entries, period)
	return toTrialBalanceResponse(report), nil
}

// fetchLedgerSnapshot issues the two independent reads concurrently. The
// reads share no state; the fan-out is purely a latency optimization.
func fetchLedgerSnapshot(
	ctx context.Context,
	accountRepo port.AccountRepository,
	entryRepo port.LedgerEntryRepository,
	companyID uuid.UUID,
) ([]model.Account, []model.LedgerEntry, error) {
	var (
		accounts []model.Account
		entries  []model.LedgerEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = accountRepo.ListByCompany(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = entryRepo.ListByCompany(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to list ledger entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return accounts, entries, nil
}

func toTrialBalanceResponse(report model.TrialBalanceReport) dto.TrialBalanceResponse {
	rows := make([]dto.TrialBalanceRowResponse, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, dto.TrialBalanceRowResponse{
			AccountID:          r.AccountID,
			AccountCode:        r.AccountCode,
			AccountName:        r.AccountName,
			AccountType:        r.AccountType,
			OpeningBalance:     r.OpeningBalance,
			DebitTotal:         r.DebitTotal,
			CreditTotal:        r.CreditTotal,
			ClosingBalance:     r.ClosingBalance,
			TrialBalanceDebit:  r.TrialBalanceDebit,
			TrialBalanceCredit: r.TrialBalanceCredit,
		})
	}
	return dto.TrialBalanceResponse{
		PeriodStart: report.PeriodStart,
		PeriodEnd:   report.PeriodEnd,
		GeneratedAt: report.GeneratedAt,
		Accounts:    rows,
		Summary: dto.TrialBalanceSummaryResponse{
			TotalDebits:  report.Summary.TotalDebits,
			TotalCredits: report.Summary.TotalCredits,
			Difference:   report.Summary.Difference,
			IsBalanced:   report.Summary.IsBalanced,
		},
	}
}
