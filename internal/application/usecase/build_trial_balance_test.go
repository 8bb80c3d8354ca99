package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malakahq/ledger-engine/internal/application/dto"
	"github.com/malakahq/ledger-engine/internal/application/usecase"
	"github.com/malakahq/ledger-engine/internal/domain/model"
	"github.com/malakahq/ledger-engine/internal/domain/service"
	"github.com/malakahq/ledger-engine/internal/domain/valueobject"
)

var testCompanyID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

func newAccount(t *testing.T, code, name string, accountType valueobject.AccountType) model.Account {
	t.Helper()
	account, err := model.NewAccount(uuid.New(), testCompanyID, code, name, accountType)
	require.NoError(t, err)
	return account
}

func newEntry(t *testing.T, accountID uuid.UUID, entryNumber string, lineNumber int, date time.Time, debit, credit int64) model.LedgerEntry {
	t.Helper()
	entry, err := model.NewLedgerEntry(uuid.New(), testCompanyID, accountID, uuid.New(),
		entryNumber, lineNumber, date, "", "",
		decimal.NewFromInt(debit), decimal.NewFromInt(credit))
	require.NoError(t, err)
	return entry
}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func TestBuildTrialBalance_Execute(t *testing.T) {
	kas := newAccount(t, "1101", "Kas", valueobject.AccountTypeAsset)
	sales := newAccount(t, "4101", "Penjualan", valueobject.AccountTypeRevenue)
	entries := []model.LedgerEntry{
		newEntry(t, kas.ID(), "JE-2024-001", 1, day(2024, 7, 15), 1_000_000, 0),
		newEntry(t, sales.ID(), "JE-2024-001", 2, day(2024, 7, 15), 0, 1_000_000),
	}

	uc := usecase.NewBuildTrialBalance(
		accountsReturning([]model.Account{kas, sales}, nil),
		entriesReturning(entries, nil),
		service.NewTrialBalanceBuilder(),
	)

	resp, err := uc.Execute(context.Background(), dto.BuildTrialBalanceRequest{
		CompanyID:   testCompanyID,
		PeriodStart: day(2024, 7, 1),
		PeriodEnd:   day(2024, 7, 31),
	})
	require.NoError(t, err)

	require.Len(t, resp.Accounts, 2)
	assert.Equal(t, "1101", resp.Accounts[0].AccountCode)
	assert.True(t, decimal.NewFromInt(1_000_000).Equal(resp.Accounts[0].TrialBalanceDebit))
	assert.Equal(t, "4101", resp.Accounts[1].AccountCode)
	assert.True(t, decimal.NewFromInt(1_000_000).Equal(resp.Accounts[1].TrialBalanceCredit))

	assert.True(t, resp.Summary.IsBalanced)
	assert.True(t, decimal.NewFromInt(1_000_000).Equal(resp.Summary.TotalDebits))
	assert.Equal(t, day(2024, 7, 1), resp.PeriodStart)
	assert.Equal(t, day(2024, 7, 31), resp.PeriodEnd)
}

func TestBuildTrialBalance_Execute_MissingCompany(t *testing.T) {
	uc := usecase.NewBuildTrialBalance(
		accountsReturning(nil, nil),
		entriesReturning(nil, nil),
		service.NewTrialBalanceBuilder(),
	)

	_, err := uc.Execute(context.Background(), dto.BuildTrialBalanceRequest{
		PeriodStart: day(2024, 7, 1),
		PeriodEnd:   day(2024, 7, 31),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company ID is required")
}

func TestBuildTrialBalance_Execute_InvalidPeriod(t *testing.T) {
	uc := usecase.NewBuildTrialBalance(
		accountsReturning(nil, nil),
		entriesReturning(nil, nil),
		service.NewTrialBalanceBuilder(),
	)

	_, err := uc.Execute(context.Background(), dto.BuildTrialBalanceRequest{
		CompanyID:   testCompanyID,
		PeriodStart: day(2024, 7, 31),
		PeriodEnd:   day(2024, 7, 1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reporting period")
}

func TestBuildTrialBalance_Execute_AccountFetchError(t *testing.T) {
	uc := usecase.NewBuildTrialBalance(
		accountsReturning(nil, errors.New("connection refused")),
		entriesReturning(nil, nil),
		service.NewTrialBalanceBuilder(),
	)

	_, err := uc.Execute(context.Background(), dto.BuildTrialBalanceRequest{
		CompanyID:   testCompanyID,
		PeriodStart: day(2024, 7, 1),
		PeriodEnd:   day(2024, 7, 31),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list accounts")
}

func TestBuildTrialBalance_Execute_EntryFetchError(t *testing.T) {
	uc := usecase.NewBuildTrialBalance(
		accountsReturning(nil, nil),
		entriesReturning(nil, errors.New("connection refused")),
		service.NewTrialBalanceBuilder(),
	)

	_, err := uc.Execute(context.Background(), dto.BuildTrialBalanceRequest{
		CompanyID:   testCompanyID,
		PeriodStart: day(2024, 7, 1),
		PeriodEnd:   day(2024, 7, 31),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list ledger entries")
}

func TestBuildTrialBalance_Execute_EmptyLedger(t *testing.T) {
	uc := usecase.NewBuildTrialBalance(
		accountsReturning(nil, nil),
		entriesReturning(nil, nil),
		service.NewTrialBalanceBuilder(),
	)

	resp, err := uc.Execute(context.Background(), dto.BuildTrialBalanceRequest{
		CompanyID:   testCompanyID,
		PeriodStart: day(2024, 7, 1),
		PeriodEnd:   day(2024, 7, 31),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Accounts)
	assert.True(t, resp.Summary.IsBalanced)
	assert.True(t, resp.Summary.TotalDebits.IsZero())
	assert.True(t, resp.Summary.TotalCredits.IsZero())
}
