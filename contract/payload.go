package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// -----------------------------------------------------------------------------
// Call Payload Decoding
// -----------------------------------------------------------------------------
// Payloads are pipe-delimited primitive fields. Decoders never touch state;
// every failure wraps ErrInvalidPayload so the dispatcher reports one stable
// code for malformed input.

// decodeInitArgs accepts an optional fund address; empty selects the default.
func decodeInitArgs(payload *string) (sdk.Address, error) {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		return "", nil
	}
	raw := trimQuoted(*payload)
	if raw == "" {
		return "", nil
	}
	return parseAddressField(raw, "fund address")
}

// decodeMintArgs unpacks `recipient|amount`.
func decodeMintArgs(payload *string) (*MintArgs, error) {
	parts, err := splitPayload(payload, 2, "mint payload requires recipient|amount")
	if err != nil {
		return nil, err
	}
	recipient, err := parseAddressField(parts[0], "recipient")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmountField(parts[1], "amount")
	if err != nil {
		return nil, err
	}
	return &MintArgs{Recipient: recipient, Amount: amount}, nil
}

// decodeTransferArgs unpacks `to|amount`.
func decodeTransferArgs(payload *string) (*TransferArgs, error) {
	parts, err := splitPayload(payload, 2, "transfer payload requires to|amount")
	if err != nil {
		return nil, err
	}
	to, err := parseAddressField(parts[0], "to")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmountField(parts[1], "amount")
	if err != nil {
		return nil, err
	}
	return &TransferArgs{To: to, Amount: amount}, nil
}

// decodeDonateArgs unpacks a lone `amount`.
func decodeDonateArgs(payload *string) (*DonateArgs, error) {
	parts, err := splitPayload(payload, 1, "donate payload requires amount")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmountField(parts[0], "amount")
	if err != nil {
		return nil, err
	}
	return &DonateArgs{Amount: amount}, nil
}

// decodeSubmitProposalArgs unpacks `recipient|amount`.
func decodeSubmitProposalArgs(payload *string) (*SubmitProposalArgs, error) {
	parts, err := splitPayload(payload, 2, "proposal payload requires recipient|amount")
	if err != nil {
		return nil, err
	}
	recipient, err := parseAddressField(parts[0], "recipient")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmountField(parts[1], "amount")
	if err != nil {
		return nil, err
	}
	return &SubmitProposalArgs{Recipient: recipient, Amount: amount}, nil
}

// decodeVoteArgs unpacks `proposalId|weight`.
func decodeVoteArgs(payload *string) (*VoteArgs, error) {
	parts, err := splitPayload(payload, 2, "vote payload requires proposalId|weight")
	if err != nil {
		return nil, err
	}
	id, err := parseUintField(parts[0], "proposal id")
	if err != nil {
		return nil, err
	}
	weight, err := parseAmountField(parts[1], "weight")
	if err != nil {
		return nil, err
	}
	return &VoteArgs{ProposalID: id, Weight: weight}, nil
}

// decodeAllocateArgs unpacks a lone `proposalId`.
func decodeAllocateArgs(payload *string) (*AllocateArgs, error) {
	parts, err := splitPayload(payload, 1, "allocate payload requires proposalId")
	if err != nil {
		return nil, err
	}
	id, err := parseUintField(parts[0], "proposal id")
	if err != nil {
		return nil, err
	}
	return &AllocateArgs{ProposalID: id}, nil
}

// decodeBalanceArgs unpacks a lone `account`.
func decodeBalanceArgs(payload *string) (sdk.Address, error) {
	parts, err := splitPayload(payload, 1, "balance payload requires account")
	if err != nil {
		return "", err
	}
	return parseAddressField(parts[0], "account")
}

// decodeProposalGetArgs unpacks a lone `proposalId`.
func decodeProposalGetArgs(payload *string) (uint64, error) {
	parts, err := splitPayload(payload, 1, "proposal payload requires proposalId")
	if err != nil {
		return 0, err
	}
	return parseUintField(parts[0], "proposal id")
}

// splitPayload trims quotes and whitespace and enforces the field count.
func splitPayload(payload *string, want int, errMsg string) ([]string, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, errMsg)
	}
	raw := trimQuoted(*payload)
	if raw == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, errMsg)
	}
	parts := strings.Split(raw, "|")
	if len(parts) < want {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, errMsg)
	}
	return parts, nil
}

// trimQuoted strips a single layer of quoting some hosts wrap payloads in.
func trimQuoted(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return strings.TrimSpace(unquoted)
			}
			return strings.TrimSpace(raw[1 : len(raw)-1])
		}
	}
	return raw
}

// parseAmountField is the token-amount variant; values are whole non-negative integers.
func parseAmountField(val string, field string) (Amount, error) {
	n, err := parseUintField(val, field)
	return Amount(n), err
}

// parseUintField trims the input and reports a friendly field name on errors.
func parseUintField(val string, field string) (uint64, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidPayload, field)
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", ErrInvalidPayload, field)
	}
	return n, nil
}

// parseAddressField trims and sanity-checks a principal identifier.
func parseAddressField(val string, field string) (sdk.Address, error) {
	addr := sdk.Address(strings.TrimSpace(val))
	if !addr.IsValid() {
		return "", fmt.Errorf("%w: invalid %s", ErrInvalidPayload, field)
	}
	return addr, nil
}
