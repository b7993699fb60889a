package contract

import "github.com/BernhardWagner251/medical-research-funding/sdk"

// -----------------------------------------------------------------------------
// Ledger Operations: mint, transfer, donate, balance
// -----------------------------------------------------------------------------

// Mint sets the recipient's balance. Admin only.
func (e *Engine) Mint(env *sdk.Env, recipient sdk.Address, amount Amount) (Amount, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, err := e.requireConfig()
	if err != nil {
		return 0, err
	}
	if env.Sender.Address != cfg.Admin {
		return 0, ErrUnauthorized
	}
	e.overwriteMintedBalance(recipient, amount)
	e.emitMintEvent(recipient, amount)
	return amount, nil
}

// overwriteMintedBalance REPLACES the recipient's balance with the minted
// amount; prior holdings are discarded, not added to. Call sites treat this
// as the single switch point for an additive mint variant.
func (e *Engine) overwriteMintedBalance(recipient sdk.Address, amount Amount) {
	e.setBalance(recipient, amount)
}

// Transfer moves tokens from the caller to any account. The sufficiency
// check always runs against the caller's pre-transfer balance, so sending to
// yourself is a checked no-op.
func (e *Engine) Transfer(env *sdk.Env, to sdk.Address, amount Amount) (Amount, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.requireConfig(); err != nil {
		return 0, err
	}
	if err := e.moveTokens(env.Sender.Address, to, amount, ErrInsufficientBalance); err != nil {
		return 0, err
	}
	e.emitTransferEvent(env.Sender.Address, to, amount)
	return amount, nil
}

// Donate is a transfer with the destination pinned to the research fund.
func (e *Engine) Donate(env *sdk.Env, amount Amount) (Amount, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, err := e.requireConfig()
	if err != nil {
		return 0, err
	}
	if err := e.moveTokens(env.Sender.Address, cfg.Fund, amount, ErrInsufficientBalance); err != nil {
		return 0, err
	}
	e.emitDonateEvent(env.Sender.Address, amount)
	return amount, nil
}

// GetBalance is a pure read returning zero for unknown accounts.
func (e *Engine) GetBalance(account sdk.Address) Amount {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balanceOf(account)
}

// moveTokens runs the full check-then-write debit/credit cycle. All
// validation happens before the first write so a failed move leaves both
// rows untouched; insufficient reports the caller-facing error kind since
// transfers and allocations surface different codes.
func (e *Engine) moveTokens(from, to sdk.Address, amount Amount, insufficient error) error {
	fromBal := e.balanceOf(from)
	if fromBal < amount {
		return insufficient
	}
	if from == to {
		// checked no-op: the sufficiency check above still applied
		return nil
	}
	newToBal, err := addAmounts(e.balanceOf(to), amount)
	if err != nil {
		return err
	}
	e.setBalance(from, fromBal-amount)
	e.setBalance(to, newToBal)
	return nil
}
