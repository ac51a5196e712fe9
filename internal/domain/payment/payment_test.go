package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	p, err := New("txn_abc123def456", 49.9)
	require.NoError(t, err)
	require.Equal(t, StatusPending, p.Status)
	require.Equal(t, 49.9, p.Amount)
	require.False(t, p.CreatedAt.IsZero())

	_, err = New("txn_abc123def456", -1)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSettleApproved(t *testing.T) {
	p, err := New("txn_abc123def456", 10)
	require.NoError(t, err)

	require.NoError(t, p.Settle(true, ""))
	require.Equal(t, StatusPaid, p.Status)
	require.Empty(t, p.FailureReason)
}

func TestSettleDeclined(t *testing.T) {
	p, err := New("txn_abc123def456", 10)
	require.NoError(t, err)

	require.NoError(t, p.Settle(false, "insufficient funds"))
	require.Equal(t, StatusDeclined, p.Status)
	require.Equal(t, "insufficient funds", p.FailureReason)
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	paid, err := New("txn_paid00000000", 10)
	require.NoError(t, err)
	require.NoError(t, paid.Settle(true, ""))

	require.ErrorIs(t, paid.Settle(true, ""), ErrInvalidStateTransition)
	require.ErrorIs(t, paid.Settle(false, "late decline"), ErrInvalidStateTransition)
	require.Equal(t, StatusPaid, paid.Status, "failed transition must not change status")

	declined, err := New("txn_decl00000000", 10)
	require.NoError(t, err)
	require.NoError(t, declined.Settle(false, "expired card"))

	require.ErrorIs(t, declined.Settle(true, ""), ErrInvalidStateTransition)
	require.Equal(t, StatusDeclined, declined.Status)
}

func TestSimulatedGatewayAlwaysApproves(t *testing.T) {
	approved, err := SimulatedGateway{}.Authorize(context.Background(), 1234.56)
	require.NoError(t, err)
	require.True(t, approved)
}
