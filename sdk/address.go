package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

// Address is the opaque principal identifier handed to the contract by the
// host runtime. It identifies balance holders, proposers, voters and the
// administrator alike.
type Address string

// String returns the literal representation (like user:alice) of the address.
// Example payload: sdk.Address("user:alice").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to guess if we deal with user/contract/system domain.
// Example payload: sdk.Address("system:research_fund").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsValid rejects empty or separator-only identifiers, used as a light sanity check.
// Example payload: sdk.Address("user:alice").IsValid()
func (a Address) IsValid() bool {
	s := a.String()
	if s == "" {
		return false
	}
	if idx := strings.Index(s, ":"); idx == 0 || idx == len(s)-1 {
		return false
	}
	return true
}
