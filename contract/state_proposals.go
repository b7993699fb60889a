package contract

import (
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Proposal Table + Counter
// -----------------------------------------------------------------------------

// saveProposal persists the encoded record under its id key.
func (e *Engine) saveProposal(p *Proposal) {
	e.state.Set(proposalKey(p.ID), string(EncodeProposal(p)))
}

// loadProposal fetches and decodes a proposal, distinguishing a missing id
// from a blob that no longer decodes.
func (e *Engine) loadProposal(id uint64) (*Proposal, error) {
	ptr := e.state.Get(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil, ErrProposalNotFound
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("%w: proposal %d: %v", ErrCorruptState, id, err)
	}
	return p, nil
}

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func (e *Engine) getCount(key string) uint64 {
	ptr := e.state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func (e *Engine) setCount(key string, n uint64) {
	e.state.Set(key, strconv.FormatUint(n, 10))
}
