package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BernhardWagner251/medical-research-funding/contract"
)

func TestProposalCodecRoundTrip(t *testing.T) {
	in := &contract.Proposal{
		ID:        7,
		Recipient: bobAddr,
		Amount:    10000,
		Votes:     321,
		Creator:   aliceAddr,
		CreatedAt: 1767225600,
	}

	out, err := contract.DecodeProposal(contract.EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeProposalShortBuffer(t *testing.T) {
	blob := contract.EncodeProposal(&contract.Proposal{ID: 1, Recipient: bobAddr})

	_, err := contract.DecodeProposal(blob[:len(blob)/2])
	require.Error(t, err)

	_, err = contract.DecodeProposal(nil)
	require.Error(t, err)
}
