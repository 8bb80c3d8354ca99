package valueobject

import (
	"fmt"
	"strings"
)

// NormalSide is the side on which an account type ordinarily carries a
// positive balance.
type NormalSide string

const (
	NormalSideDebit  NormalSide = "DEBIT"
	NormalSideCredit NormalSide = "CREDIT"
)

// AccountType classifies entries in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

func NewAccountType(s string) (AccountType, error) {
	switch at := AccountType(strings.ToUpper(s)); at {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return at, nil
	default:
		return "", fmt.Errorf("invalid account type %q", s)
	}
}

func MustAccountType(s string) AccountType {
	at, err := NewAccountType(s)
	if err != nil {
		panic(err)
	}
	return at
}

func (t AccountType) String() string { return string(t) }

// NormalSide returns the normal balance side for the account type.
// Assets and expenses are debit-normal; liabilities, equity and revenue
// are credit-normal.
func (t AccountType) NormalSide() NormalSide {
	switch t {
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue:
		return NormalSideCredit
	default:
		return NormalSideDebit
	}
}
