package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BernhardWagner251/medical-research-funding/contract"
)

func newBadgerState(t *testing.T) *contract.BadgerState {
	state, err := contract.NewBadgerState(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, state.Close())
	})
	return state
}

func TestBadgerStateSetGetDelete(t *testing.T) {
	state := newBadgerState(t)

	assert.Nil(t, state.Get("missing"))

	state.Set("k", "v1")
	got := state.Get("k")
	require.NotNil(t, got)
	assert.Equal(t, "v1", *got)

	state.Set("k", "v2")
	got = state.Get("k")
	require.NotNil(t, got)
	assert.Equal(t, "v2", *got)

	state.Delete("k")
	assert.Nil(t, state.Get("k"))
}

// The engine behaves identically on durable storage and on the mock.
func TestEngineOnBadgerState(t *testing.T) {
	state := newBadgerState(t)
	engine := contract.NewEngine(state, nil)

	_, err := engine.Init(env(adminAddr), "")
	require.NoError(t, err)
	_, err = engine.Mint(env(adminAddr), aliceAddr, 1000)
	require.NoError(t, err)
	_, err = engine.Donate(env(aliceAddr), 400)
	require.NoError(t, err)

	assert.Equal(t, contract.Amount(600), engine.GetBalance(aliceAddr))
	assert.Equal(t, contract.Amount(400), engine.GetBalance(fundAddr))
}
