package payment

// State implements the state pattern for the settlement lifecycle.
// The machine is intentionally small: pending settles exactly once, into
// paid or declined, and terminal states reject further transitions.
type State interface {
	Status() Status
	OnGatewayApproved(p *Payment) (State, error)
	OnGatewayDeclined(p *Payment, reason string) (State, error)
}

type pendingState struct{}

func (pendingState) Status() Status { return StatusPending }

func (pendingState) OnGatewayApproved(p *Payment) (State, error) {
	p.FailureReason = ""
	return paidState{}, nil
}

func (pendingState) OnGatewayDeclined(p *Payment, reason string) (State, error) {
	p.FailureReason = reason
	return declinedState{}, nil
}

type paidState struct{}

func (paidState) Status() Status { return StatusPaid }

func (paidState) OnGatewayApproved(*Payment) (State, error) {
	return nil, ErrInvalidStateTransition
}

func (paidState) OnGatewayDeclined(*Payment, string) (State, error) {
	return nil, ErrInvalidStateTransition
}

type declinedState struct{}

func (declinedState) Status() Status { return StatusDeclined }

func (declinedState) OnGatewayApproved(*Payment) (State, error) {
	return nil, ErrInvalidStateTransition
}

func (declinedState) OnGatewayDeclined(*Payment, string) (State, error) {
	return nil, ErrInvalidStateTransition
}
