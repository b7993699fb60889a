package contract

import "strings"

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isInitialized returns true once contract_init has persisted a config.
func (e *Engine) isInitialized() bool {
	ptr := e.state.Get(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the fixed identities from state, nil before init.
func (e *Engine) loadContractConfig() *ContractConfig {
	ptr := e.state.Get(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func (e *Engine) saveContractConfig(cfg *ContractConfig) {
	e.state.Set(ContractConfigKey, encodeContractConfig(cfg))
}

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: admin|fund
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Admin.String() + "|" + cfg.Fund.String()
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 2 {
		return nil
	}
	return &ContractConfig{
		Admin: AddressFromString(parts[0]),
		Fund:  AddressFromString(parts[1]),
	}
}
