package contract

import (
	"strconv"

	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// -----------------------------------------------------------------------------
// Balance Table
// -----------------------------------------------------------------------------
// Balances are stored as decimal strings, one key per account. Accounts that
// were never written simply have no key; the read path treats that as zero,
// so the table behaves like a total function over all addresses.

// balanceOf retrieves the stored balance, defaulting absent keys to zero.
func (e *Engine) balanceOf(addr sdk.Address) Amount {
	ptr := e.state.Get(balanceKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	balance, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		return 0
	}
	return Amount(balance)
}

// setBalance writes the balance back as a decimal string for the host kv.
func (e *Engine) setBalance(addr sdk.Address, amount Amount) {
	e.state.Set(balanceKey(addr), strconv.FormatUint(uint64(amount), 10))
}

// addAmounts is the only sanctioned way to credit: it refuses to wrap.
func addAmounts(a, b Amount) (Amount, error) {
	sum := a + b
	if sum < a {
		return 0, ErrAmountOverflow
	}
	return sum, nil
}
