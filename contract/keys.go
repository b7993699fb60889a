package contract

import "github.com/BernhardWagner251/medical-research-funding/sdk"

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kBalance stores one decimal balance string per account address.
	kBalance byte = 0x01
	// kProposal contains encoded Proposal records.
	kProposal byte = 0x10
)

const (
	// ContractConfigKey holds the encoded admin/fund identities.
	ContractConfigKey = "cfg:contract"
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:props"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// balanceKey mixes the prefix with raw address bytes to avoid nested maps in host storage.
func balanceKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kBalance)
	buf = append(buf, addrStr...)
	return string(buf)
}

// proposalKey encodes the id under the 0x10 prefix keeping record blobs contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
