package contract

import (
	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// Amount is a whole-token quantity. Balances, donations, proposal amounts
// and vote weights never go negative, so the unsigned type makes the
// invariant structural; arithmetic goes through the checked helpers in
// ledger code.
type Amount uint64

// ContractConfig pins the two fixed identities for the contract's lifetime.
// Admin is the only principal allowed to mint and allocate; Fund is the
// pooled account all donations land in and all allocations draw from.
type ContractConfig struct {
	Admin sdk.Address
	Fund  sdk.Address
}

// Proposal is a request for the fund to pay Amount to Recipient. Recipient
// and Amount are immutable after submission; Votes is the only field that
// ever changes. There is no allocated flag, so a proposal can be paid out
// repeatedly while the fund stays solvent.
type Proposal struct {
	ID        uint64      `json:"id"`
	Recipient sdk.Address `json:"recipient"`
	Amount    Amount      `json:"amount"`
	Votes     Amount      `json:"votes"`
	Creator   sdk.Address `json:"creator"`
	CreatedAt int64       `json:"created_at"`
}

type MintArgs struct {
	Recipient sdk.Address
	Amount    Amount
}

type TransferArgs struct {
	To     sdk.Address
	Amount Amount
}

type DonateArgs struct {
	Amount Amount
}

type SubmitProposalArgs struct {
	Recipient sdk.Address
	Amount    Amount
}

type VoteArgs struct {
	ProposalID uint64
	Weight     Amount
}

type AllocateArgs struct {
	ProposalID uint64
}

// AddressFromString converts a human string to the host address wrapper.
// Example payload: AddressFromString("user:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("user:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
