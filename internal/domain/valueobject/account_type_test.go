package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malakahq/ledger-engine/internal/domain/valueobject"
)

func TestNewAccountType(t *testing.T) {
	t.Run("accepts all five types", func(t *testing.T) {
		for _, s := range []string{"ASSET", "LIABILITY", "EQUITY", "REVENUE", "EXPENSE"} {
			at, err := valueobject.NewAccountType(s)
			require.NoError(t, err)
			assert.Equal(t, s, at.String())
		}
	})

	t.Run("normalizes case", func(t *testing.T) {
		at, err := valueobject.NewAccountType("asset")
		require.NoError(t, err)
		assert.Equal(t, valueobject.AccountTypeAsset, at)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		_, err := valueobject.NewAccountType("CONTRA")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid account type")

		_, err = valueobject.NewAccountType("")
		require.Error(t, err)
	})
}

func TestAccountType_NormalSide(t *testing.T) {
	tests := []struct {
		accountType valueobject.AccountType
		side        valueobject.NormalSide
	}{
		{valueobject.AccountTypeAsset, valueobject.NormalSideDebit},
		{valueobject.AccountTypeExpense, valueobject.NormalSideDebit},
		{valueobject.AccountTypeLiability, valueobject.NormalSideCredit},
		{valueobject.AccountTypeEquity, valueobject.NormalSideCredit},
		{valueobject.AccountTypeRevenue, valueobject.NormalSideCredit},
	}

	for _, tt := range tests {
		t.Run(tt.accountType.String(), func(t *testing.T) {
			assert.Equal(t, tt.side, tt.accountType.NormalSide())
		})
	}
}

func TestMustAccountType(t *testing.T) {
	t.Run("returns valid type", func(t *testing.T) {
		assert.Equal(t, valueobject.AccountTypeRevenue, valueobject.MustAccountType("REVENUE"))
	})

	t.Run("panics on invalid type", func(t *testing.T) {
		assert.Panics(t, func() { valueobject.MustAccountType("BOGUS") })
	})
}
