package contract_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BernhardWagner251/medical-research-funding/contract"
)

func TestVoteAccumulates(t *testing.T) {
	engine, _, events := setupContract(t)
	mustMint(t, engine, aliceAddr, 1000)
	mustMint(t, engine, bobAddr, 200)
	id, err := engine.SubmitProposal(env(aliceAddr), bobAddr, 5000)
	require.NoError(t, err)

	applied, err := engine.Vote(env(aliceAddr), id, 600)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(600), applied)

	applied, err = engine.Vote(env(bobAddr), id, 200)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(200), applied)

	p, err := engine.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(800), p.Votes)
	assert.Contains(t, *events, "v|id:0|by:user:alice|w:600")
}

// Voting signals support, it does not spend tokens.
func TestVoteLeavesBalanceUntouched(t *testing.T) {
	engine, _, _ := setupContract(t)
	mustMint(t, engine, aliceAddr, 500)
	id, err := engine.SubmitProposal(env(aliceAddr), bobAddr, 100)
	require.NoError(t, err)

	_, err = engine.Vote(env(aliceAddr), id, 500)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(500), engine.GetBalance(aliceAddr))
}

// The same holdings can back votes on any number of proposals, and the same
// voter may cast again on the same proposal.
func TestVoteRepeatAndAcrossProposals(t *testing.T) {
	engine, _, _ := setupContract(t)
	mustMint(t, engine, aliceAddr, 100)
	first, err := engine.SubmitProposal(env(aliceAddr), bobAddr, 1)
	require.NoError(t, err)
	second, err := engine.SubmitProposal(env(aliceAddr), bobAddr, 1)
	require.NoError(t, err)

	_, err = engine.Vote(env(aliceAddr), first, 100)
	require.NoError(t, err)
	_, err = engine.Vote(env(aliceAddr), first, 100)
	require.NoError(t, err)
	_, err = engine.Vote(env(aliceAddr), second, 100)
	require.NoError(t, err)

	p, err := engine.GetProposal(first)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(200), p.Votes)
	p, err = engine.GetProposal(second)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(100), p.Votes)
}

func TestVoteInsufficientPower(t *testing.T) {
	engine, _, _ := setupContract(t)
	mustMint(t, engine, aliceAddr, 100)
	id, err := engine.SubmitProposal(env(aliceAddr), bobAddr, 1)
	require.NoError(t, err)

	_, err = engine.Vote(env(aliceAddr), id, 101)
	require.ErrorIs(t, err, contract.ErrInsufficientVotingPower)

	p, err := engine.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(0), p.Votes)
}

func TestVoteMissingProposal(t *testing.T) {
	engine, _, _ := setupContract(t)
	mustMint(t, engine, aliceAddr, 100)

	_, err := engine.Vote(env(aliceAddr), 7, 10)
	require.ErrorIs(t, err, contract.ErrProposalNotFound)
}

func TestVoteTallyOverflow(t *testing.T) {
	engine, _, _ := setupContract(t)
	mustMint(t, engine, aliceAddr, contract.Amount(math.MaxUint64))
	id, err := engine.SubmitProposal(env(aliceAddr), bobAddr, 1)
	require.NoError(t, err)

	_, err = engine.Vote(env(aliceAddr), id, contract.Amount(math.MaxUint64))
	require.NoError(t, err)
	_, err = engine.Vote(env(aliceAddr), id, 1)
	require.ErrorIs(t, err, contract.ErrAmountOverflow)

	p, err := engine.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(math.MaxUint64), p.Votes)
}
