package usecase_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/malakahq/ledger-engine/internal/domain/model"
)

type mockAccountRepository struct {
	listFunc func(ctx context.Context, companyID uuid.UUID) ([]model.Account, error)
}

func (m *mockAccountRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Account, error) {
	return m.listFunc(ctx, companyID)
}

type mockLedgerEntryRepository struct {
	listFunc func(ctx context.Context, companyID uuid.UUID) ([]model.LedgerEntry, error)
}

func (m *mockLedgerEntryRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.LedgerEntry, error) {
	return m.listFunc(ctx, companyID)
}

func accountsReturning(accounts []model.Account, err error) *mockAccountRepository {
	return &mockAccountRepository{
		listFunc: func(context.Context, uuid.UUID) ([]model.Account, error) {
			return accounts, err
		},
	}
}

func entriesReturning(entries []model.LedgerEntry, err error) *mockLedgerEntryRepository {
	return &mockLedgerEntryRepository{
		listFunc: func(context.Context, uuid.UUID) ([]model.LedgerEntry, error) {
			return entries, err
		},
	}
}
