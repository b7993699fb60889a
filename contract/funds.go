package contract

import "github.com/BernhardWagner251/medical-research-funding/sdk"

// -----------------------------------------------------------------------------
// Fund Allocation
// -----------------------------------------------------------------------------

// AllocateFunds pays a proposal's amount from the research fund to its
// recipient. Admin only. The vote tally is deliberately not consulted and
// the proposal record is left as-is, so allocation can repeat while the fund
// stays solvent.
func (e *Engine) AllocateFunds(env *sdk.Env, proposalID uint64) (Amount, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, err := e.requireConfig()
	if err != nil {
		return 0, err
	}
	if env.Sender.Address != cfg.Admin {
		return 0, ErrUnauthorized
	}
	p, err := e.loadProposal(proposalID)
	if err != nil {
		return 0, err
	}
	if err := e.moveTokens(cfg.Fund, p.Recipient, p.Amount, ErrInsufficientFundBalance); err != nil {
		return 0, err
	}
	e.emitAllocationEvent(proposalID, p.Recipient, p.Amount)
	return p.Amount, nil
}
