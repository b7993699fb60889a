////////////////////////////////////////////////////////////////////////////////
// Medical Research Funding: a pooled-donation funding contract
// ledger + proposals + admin-gated allocation
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/BernhardWagner251/medical-research-funding/contract"
	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// Local debug entry. In production the host runtime constructs the engine
// against its own store and feeds calls through the dispatcher; this wiring
// only exists so the contract can be poked without a chain.
func main() {
	statePath := flag.String("state", "", "badger directory for durable state (empty = in-memory)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	var state sdk.State
	if *statePath != "" {
		bs, err := contract.NewBadgerState(*statePath)
		if err != nil {
			log.WithError(err).Fatal("failed to open state store")
		}
		defer bs.Close()
		state = bs
	} else {
		state = contract.NewMockState()
	}

	engine := contract.NewEngine(state, func(msg string) {
		log.WithField("event", msg).Info("contract event")
	})
	_ = contract.NewDispatcher(engine, log)

	log.WithField("state", *statePath).Info("contract wired, waiting on host calls")
}
