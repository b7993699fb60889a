package sdk

import "github.com/google/uuid"

// MockEnv builds a call environment for local runs and tests. Each call gets
// a fresh tx id so per-tx caching or logging behaves like on chain.
// Example payload: sdk.MockEnv("user:alice")
func MockEnv(sender Address) *Env {
	return &Env{
		ContractId:  "contract:research_fund_test",
		TxId:        uuid.NewString(),
		BlockHeight: 1,
		Timestamp:   "2026-01-01T00:00:00.000",
		Sender:      Sender{Address: sender},
	}
}
