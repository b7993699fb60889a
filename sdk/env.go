package sdk

// Sender carries the authenticated identity under which the current call
// executes. The host binds it at call time; payloads can never override it.
type Sender struct {
	Address Address `json:"id"`
}

// Env is the per-call execution environment snapshot supplied by the host.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender `json:"sender"`
}
