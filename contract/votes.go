package contract

import "github.com/BernhardWagner251/medical-research-funding/sdk"

// -----------------------------------------------------------------------------
// Voting
// -----------------------------------------------------------------------------

// Vote adds the caller's weight to a proposal's accumulator. Weight is
// capped by the caller's current balance but the balance is neither debited
// nor locked: the same tokens may back votes on any number of proposals, and
// repeat votes on the same proposal stack. Votes carry no binding effect on
// allocation.
func (e *Engine) Vote(env *sdk.Env, proposalID uint64, weight Amount) (Amount, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.requireConfig(); err != nil {
		return 0, err
	}
	p, err := e.loadProposal(proposalID)
	if err != nil {
		return 0, err
	}
	if e.balanceOf(env.Sender.Address) < weight {
		return 0, ErrInsufficientVotingPower
	}
	newVotes, err := addAmounts(p.Votes, weight)
	if err != nil {
		return 0, err
	}
	p.Votes = newVotes
	e.saveProposal(p)
	e.emitVoteCastEvent(proposalID, env.Sender.Address, weight)
	return weight, nil
}
