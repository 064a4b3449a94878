package services

import (
	"context"
	"fmt"
	"testing"

	"savingsbook/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRejectionCategory(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{invalidArgument("amount", "amount must be greater than 0"), "validation"},
		{fmt.Errorf("update: %w", ErrInvalidRegulation), "validation"},
		{violation(ErrBelowMinimumAmount, models.StateActiveNoTerm, "amount >= 100000", nil), "validation"},
		{violation(ErrPrematureWithdrawal, models.StateActiveFixedTermPreMaturity, "today >= maturity_date", nil), "state_conflict"},
		{ErrIllegalStateTransition, "state_conflict"},
		{context.DeadlineExceeded, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, rejectionCategory(tt.err))
		})
	}
}
