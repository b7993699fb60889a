package contract

import "github.com/BernhardWagner251/medical-research-funding/sdk"

// -----------------------------------------------------------------------------
// Proposals: submit + read
// -----------------------------------------------------------------------------

// SubmitProposal stores a new funding request and returns its id. Any caller
// may submit; the requested amount is only checked against the fund at
// allocation time. Id assignment and the counter bump happen inside the same
// lock so concurrent submissions can neither collide nor skip an id.
func (e *Engine) SubmitProposal(env *sdk.Env, recipient sdk.Address, amount Amount) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.requireConfig(); err != nil {
		return 0, err
	}
	id := e.getCount(ProposalsCount)
	p := &Proposal{
		ID:        id,
		Recipient: recipient,
		Amount:    amount,
		Votes:     0,
		Creator:   env.Sender.Address,
		CreatedAt: nowUnix(env),
	}
	e.saveProposal(p)
	e.setCount(ProposalsCount, id+1)
	e.emitProposalCreatedEvent(id, env.Sender.Address)
	return id, nil
}

// GetProposal is a pure read; missing ids report ErrProposalNotFound.
func (e *Engine) GetProposal(id uint64) (*Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadProposal(id)
}
