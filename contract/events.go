package contract

import (
	"fmt"

	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// One terse line per successful mutation so indexing bots can follow the
// ledger without scanning full storage diffs. Failed calls emit nothing.

// emitInitEvent records the fixed identities once at setup.
func (e *Engine) emitInitEvent(cfg *ContractConfig) {
	e.emit(fmt.Sprintf(
		"ci|admin:%s|fund:%s",
		cfg.Admin.String(),
		cfg.Fund.String(),
	))
}

// emitMintEvent logs the post-mint balance, which equals the minted amount.
func (e *Engine) emitMintEvent(recipient sdk.Address, amount Amount) {
	e.emit(fmt.Sprintf(
		"mt|to:%s|am:%d",
		recipient.String(),
		amount,
	))
}

// emitTransferEvent covers peer transfers including checked self-sends.
func (e *Engine) emitTransferEvent(from, to sdk.Address, amount Amount) {
	e.emit(fmt.Sprintf(
		"tr|from:%s|to:%s|am:%d",
		from.String(),
		to.String(),
		amount,
	))
}

// emitDonateEvent marks pool inflows separately from plain transfers.
func (e *Engine) emitDonateEvent(from sdk.Address, amount Amount) {
	e.emit(fmt.Sprintf(
		"dn|by:%s|am:%d",
		from.String(),
		amount,
	))
}

// emitProposalCreatedEvent keeps observers updated with a short pc line for every new request.
func (e *Engine) emitProposalCreatedEvent(proposalID uint64, creator sdk.Address) {
	e.emit(fmt.Sprintf(
		"pc|id:%d|by:%s",
		proposalID,
		creator.String(),
	))
}

// emitVoteCastEvent includes the raw weight so tallies can be replayed from logs only.
func (e *Engine) emitVoteCastEvent(proposalID uint64, voter sdk.Address, weight Amount) {
	e.emit(fmt.Sprintf(
		"v|id:%d|by:%s|w:%d",
		proposalID,
		voter.String(),
		weight,
	))
}

// emitAllocationEvent lets auditors trace every pool outflow to a proposal.
func (e *Engine) emitAllocationEvent(proposalID uint64, recipient sdk.Address, amount Amount) {
	e.emit(fmt.Sprintf(
		"fa|id:%d|to:%s|am:%d",
		proposalID,
		recipient.String(),
		amount,
	))
}
