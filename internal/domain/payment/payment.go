package payment

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidStateTransition = errors.New("payment: invalid state transition")
	ErrInvalidAmount          = errors.New("payment: amount must be zero or greater")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusDeclined Status = "declined"
)

// Gateway authorizes a settlement attempt. The production wiring uses the
// simulated gateway below; a real acquirer integration replaces only this port.
type Gateway interface {
	Authorize(ctx context.Context, amount float64) (bool, error)
}

// SimulatedGateway approves every settlement. The decline path exists in the
// state machine but is unreachable through this gateway.
type SimulatedGateway struct{}

func (SimulatedGateway) Authorize(ctx context.Context, amount float64) (bool, error) {
	_ = ctx
	_ = amount
	return true, nil
}

// Payment is an ephemeral settlement record. Transaction identifiers are
// generated fresh per call; nothing is persisted.
type Payment struct {
	TransactionID string
	Amount        float64
	Status        Status
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	state State
}

func New(transactionID string, amount float64) (*Payment, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	now := time.Now().UTC()
	return &Payment{
		TransactionID: transactionID,
		Amount:        amount,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
		state:         pendingState{},
	}, nil
}

// Settle moves the payment to its terminal state based on the gateway decision.
func (p *Payment) Settle(approved bool, reason string) error {
	var (
		next State
		err  error
	)
	if approved {
		next, err = p.state.OnGatewayApproved(p)
	} else {
		next, err = p.state.OnGatewayDeclined(p, reason)
	}
	if err != nil {
		return err
	}
	p.state = next
	p.Status = next.Status()
	p.UpdatedAt = time.Now().UTC()
	return nil
}
