package contract_test

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/BernhardWagner251/medical-research-funding/contract"
	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

const (
	adminAddr = sdk.Address("user:admin")
	aliceAddr = sdk.Address("user:alice")
	bobAddr   = sdk.Address("user:bob")
	fundAddr  = contract.DefaultFundAddress
)

// testWriter funnels logrus output into the test log so failures carry the
// call trace without polluting stdout on green runs.
type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func newTestLogger(t testing.TB) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(testWriter{t})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

// newTestEngine builds an engine on a fresh MockState and collects emitted
// event lines for assertions.
func newTestEngine(t testing.TB) (*contract.Engine, *contract.MockState, *[]string) {
	state := contract.NewMockState()
	events := &[]string{}
	engine := contract.NewEngine(state, func(msg string) {
		*events = append(*events, msg)
	})
	return engine, state, events
}

// setupContract returns an engine already initialized with the default fund.
func setupContract(t testing.TB) (*contract.Engine, *contract.MockState, *[]string) {
	engine, state, events := newTestEngine(t)
	if _, err := engine.Init(env(adminAddr), ""); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return engine, state, events
}

// setupDispatcher stacks the call surface on an initialized engine.
func setupDispatcher(t testing.TB) (*contract.Dispatcher, *contract.MockState) {
	engine, state, _ := setupContract(t)
	return contract.NewDispatcher(engine, newTestLogger(t)), state
}

func env(sender sdk.Address) *sdk.Env {
	return sdk.MockEnv(sender)
}

func strptr(s string) *string { return &s }
