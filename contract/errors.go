package contract

import "errors"

// Every failure aborts the call with zero state mutation. The host reports
// the stable code from ErrorCode back to the original caller, so these
// values are part of the contract's wire surface and must not change.
var (
	// ErrUnauthorized: caller is not the administrator (mint, allocate).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInsufficientBalance: caller balance below the requested amount (transfer, donate).
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientVotingPower: caller balance below the requested vote weight.
	ErrInsufficientVotingPower = errors.New("insufficient voting power")
	// ErrProposalNotFound: no proposal stored at the given id.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrInsufficientFundBalance: research fund cannot cover the proposal amount.
	ErrInsufficientFundBalance = errors.New("insufficient fund balance")
	// ErrAmountOverflow: a credit or vote accumulation would wrap uint64.
	ErrAmountOverflow = errors.New("amount overflow")
	// ErrNotInitialized / ErrAlreadyInitialized guard the one-shot init.
	ErrNotInitialized     = errors.New("contract not initialized")
	ErrAlreadyInitialized = errors.New("contract already initialized")
	// ErrInvalidPayload: the pipe-delimited payload did not decode.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrUnknownAction: the dispatcher has no handler for the action name.
	ErrUnknownAction = errors.New("unknown action")
	// ErrCorruptState: a stored blob failed to decode. Should never happen.
	ErrCorruptState = errors.New("corrupt state")
)

// ErrorCode maps an engine error to its stable wire code. Wrapped errors
// resolve to the sentinel they wrap; anything unknown reports internal_error.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrInsufficientVotingPower):
		return "insufficient_voting_power"
	case errors.Is(err, ErrProposalNotFound):
		return "proposal_not_found"
	case errors.Is(err, ErrInsufficientFundBalance):
		return "insufficient_fund_balance"
	case errors.Is(err, ErrAmountOverflow):
		return "amount_overflow"
	case errors.Is(err, ErrNotInitialized):
		return "not_initialized"
	case errors.Is(err, ErrAlreadyInitialized):
		return "already_initialized"
	case errors.Is(err, ErrInvalidPayload):
		return "invalid_payload"
	case errors.Is(err, ErrUnknownAction):
		return "unknown_action"
	case errors.Is(err, ErrCorruptState):
		return "corrupt_state"
	default:
		return "internal_error"
	}
}
