package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/malakahq/ledger-engine/internal/domain/valueobject"
)

// Account is one entry in the chart of accounts. Accounts are owned by the
// master-data service and are immutable for the duration of an aggregation
// run.
type Account struct {
	id          uuid.UUID
	companyID   uuid.UUID
	code        string
	name        string
	accountType valueobject.AccountType
}

func NewAccount(id, companyID uuid.UUID, code, name string, accountType valueobject.AccountType) (Account, error) {
	if id == uuid.Nil {
		return Account{}, fmt.Errorf("account ID is required")
	}
	if companyID == uuid.Nil {
		return Account{}, fmt.Errorf("company ID is required")
	}
	if code == "" {
		return Account{}, fmt.Errorf("account code is required")
	}
	if name == "" {
		return Account{}, fmt.Errorf("account name is required")
	}
	if _, err := valueobject.NewAccountType(string(accountType)); err != nil {
		return Account{}, err
	}
	return Account{
		id:          id,
		companyID:   companyID,
		code:        code,
		name:        name,
		accountType: accountType,
	}, nil
}

func (a Account) ID() uuid.UUID                     { return a.id }
func (a Account) CompanyID() uuid.UUID              { return a.companyID }
func (a Account) Code() string                      { return a.code }
func (a Account) Name() string                      { return a.name }
func (a Account) Type() valueobject.AccountType     { return a.accountType }
func (a Account) NormalSide() valueobject.NormalSide { return a.accountType.NormalSide() }
