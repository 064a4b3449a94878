package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{
			name: "deposit",
			tx:   Transaction{AccountID: accountID, Kind: TransactionKindDeposit, Amount: decimal.NewFromInt(200000), BalanceAfter: decimal.NewFromInt(1200000)},
		},
		{
			name: "close of an emptied account",
			tx:   Transaction{AccountID: accountID, Kind: TransactionKindClose, Amount: decimal.Zero, BalanceAfter: decimal.Zero},
		},
		{
			name:    "zero withdrawal",
			tx:      Transaction{AccountID: accountID, Kind: TransactionKindWithdraw, Amount: decimal.Zero},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			tx:      Transaction{AccountID: accountID, Kind: TransactionKindDeposit, Amount: decimal.NewFromInt(-5)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown kind",
			tx:      Transaction{AccountID: accountID, Kind: "transfer", Amount: decimal.NewFromInt(5)},
			wantErr: ErrInvalidTransactionKind,
		},
		{
			name:    "negative interest",
			tx:      Transaction{AccountID: accountID, Kind: TransactionKindWithdraw, Amount: decimal.NewFromInt(5), InterestPaid: decimal.NewFromInt(-1)},
			wantErr: ErrInvalidInterestPaid,
		},
		{
			name:    "negative balance after",
			tx:      Transaction{AccountID: accountID, Kind: TransactionKindWithdraw, Amount: decimal.NewFromInt(5), BalanceAfter: decimal.NewFromInt(-5)},
			wantErr: ErrInvalidBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransaction_AppendOnly(t *testing.T) {
	tx := Transaction{AccountID: uuid.New(), Kind: TransactionKindOpen, Amount: decimal.NewFromInt(100000), BalanceAfter: decimal.NewFromInt(100000)}

	require.NoError(t, tx.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.False(t, tx.CreatedAt.IsZero())

	assert.Error(t, tx.BeforeUpdate(nil))
	assert.Error(t, tx.BeforeDelete(nil))
}

func TestTransaction_Payout(t *testing.T) {
	tests := []struct {
		kind string
		want int64
	}{
		{TransactionKindOpen, 0},
		{TransactionKindDeposit, 0},
		{TransactionKindWithdraw, 1007500},
		{TransactionKindClose, 1007500},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			tx := Transaction{Kind: tt.kind, Amount: decimal.NewFromInt(1000000), InterestPaid: decimal.NewFromInt(7500)}
			assert.True(t, tx.Payout().Equal(decimal.NewFromInt(tt.want)), "payout %s", tx.Payout())
		})
	}
}

func TestSumPrincipal(t *testing.T) {
	log := []Transaction{
		{Kind: TransactionKindOpen, Amount: decimal.NewFromInt(1000000)},
		{Kind: TransactionKindDeposit, Amount: decimal.NewFromInt(500000)},
		{Kind: TransactionKindWithdraw, Amount: decimal.NewFromInt(300000), InterestPaid: decimal.NewFromInt(900)},
		{Kind: TransactionKindClose, Amount: decimal.NewFromInt(1200000), InterestPaid: decimal.NewFromInt(3600)},
	}

	assert.True(t, SumPrincipal(log[:3]).Equal(decimal.NewFromInt(1200000)))
	assert.True(t, SumPrincipal(log).IsZero())
	assert.True(t, SumPrincipal(nil).IsZero())
}
