package contract

import (
	"strconv"
	"sync"
	"time"

	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// DefaultFundAddress is used when contract_init is called without an
// explicit fund account. It lives in the system domain so no user can ever
// authenticate as the pooled fund.
const DefaultFundAddress = sdk.Address("system:research_fund")

// EventLog receives one terse line per successful mutation. The host wires
// it to its own log sink; nil discards events.
type EventLog func(msg string)

// Engine owns the balance table, the proposal table and the proposal
// counter, all persisted through the host State. Every operation is a single
// atomic unit: it validates all preconditions against current state before
// performing any write, and the mutex serializes concurrent callers so no
// interleaving can observe a half-applied call.
type Engine struct {
	mu     sync.Mutex
	state  sdk.State
	events EventLog
}

// NewEngine wires the engine to the host-provided store and event sink.
func NewEngine(state sdk.State, events EventLog) *Engine {
	return &Engine{state: state, events: events}
}

// Init fixes the administrator (the caller) and the fund account for the
// engine's lifetime. One-shot: a second call fails with ErrAlreadyInitialized.
func (e *Engine) Init(env *sdk.Env, fund sdk.Address) (*ContractConfig, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.isInitialized() {
		return nil, ErrAlreadyInitialized
	}
	if fund == "" {
		fund = DefaultFundAddress
	}
	cfg := &ContractConfig{
		Admin: env.Sender.Address,
		Fund:  fund,
	}
	e.saveContractConfig(cfg)
	e.emitInitEvent(cfg)
	return cfg, nil
}

func (e *Engine) emit(msg string) {
	if e.events != nil {
		e.events(msg)
	}
}

// requireConfig loads the fixed identities, failing closed before init.
func (e *Engine) requireConfig() (*ContractConfig, error) {
	cfg := e.loadContractConfig()
	if cfg == nil {
		return nil, ErrNotInitialized
	}
	return cfg, nil
}

// nowUnix prefers the host block timestamp so replicas agree on CreatedAt;
// the wall clock only serves local debug runs without a host env.
func nowUnix(env *sdk.Env) int64 {
	if env != nil && env.Timestamp != "" {
		if v, err := strconv.ParseInt(env.Timestamp, 10, 64); err == nil {
			return v
		}
		if t, err := time.Parse(time.RFC3339, env.Timestamp); err == nil {
			return t.Unix()
		}
	}
	return time.Now().Unix()
}
