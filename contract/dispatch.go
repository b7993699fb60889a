package contract

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/BernhardWagner251/medical-research-funding/sdk"
)

// Action names form the contract's call surface. The host routes each signed
// transaction here with the authenticated env and the raw payload string.
const (
	ActionInit        = "contract_init"
	ActionMint        = "ledger_mint"
	ActionTransfer    = "ledger_transfer"
	ActionBalance     = "ledger_balance"
	ActionDonate      = "fund_donate"
	ActionAllocate    = "fund_allocate"
	ActionSubmit      = "proposal_submit"
	ActionVote        = "proposal_vote"
	ActionGetProposal = "proposal_get"
)

// Dispatcher resolves actions, decodes payloads and translates engine errors
// into their stable wire codes. It is the only layer that logs; the engine
// itself stays silent so hosts keep full control of observability.
type Dispatcher struct {
	engine *Engine
	log    *logrus.Logger
}

// NewDispatcher wires the call surface to an engine and a host logger.
func NewDispatcher(engine *Engine, log *logrus.Logger) *Dispatcher {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Dispatcher{engine: engine, log: log}
}

// Call executes one action and returns its result string. On failure the
// returned error carries the stable code via ErrorCode and no state changed.
func (d *Dispatcher) Call(env *sdk.Env, action string, payload *string) (string, error) {
	fields := logrus.Fields{
		"action": action,
		"caller": env.Sender.Address.String(),
		"tx":     env.TxId,
	}

	result, err := d.invoke(env, action, payload)
	if err != nil {
		d.log.WithFields(fields).WithField("code", ErrorCode(err)).Warn(err.Error())
		return "", err
	}
	d.log.WithFields(fields).WithField("result", result).Debug("call committed")
	return result, nil
}

func (d *Dispatcher) invoke(env *sdk.Env, action string, payload *string) (string, error) {
	switch action {
	case ActionInit:
		fund, err := decodeInitArgs(payload)
		if err != nil {
			return "", err
		}
		cfg, err := d.engine.Init(env, fund)
		if err != nil {
			return "", err
		}
		return "initialized with fund " + cfg.Fund.String(), nil

	case ActionMint:
		args, err := decodeMintArgs(payload)
		if err != nil {
			return "", err
		}
		minted, err := d.engine.Mint(env, args.Recipient, args.Amount)
		if err != nil {
			return "", err
		}
		return formatAmount(minted), nil

	case ActionTransfer:
		args, err := decodeTransferArgs(payload)
		if err != nil {
			return "", err
		}
		moved, err := d.engine.Transfer(env, args.To, args.Amount)
		if err != nil {
			return "", err
		}
		return formatAmount(moved), nil

	case ActionDonate:
		args, err := decodeDonateArgs(payload)
		if err != nil {
			return "", err
		}
		donated, err := d.engine.Donate(env, args.Amount)
		if err != nil {
			return "", err
		}
		return formatAmount(donated), nil

	case ActionSubmit:
		args, err := decodeSubmitProposalArgs(payload)
		if err != nil {
			return "", err
		}
		id, err := d.engine.SubmitProposal(env, args.Recipient, args.Amount)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(id, 10), nil

	case ActionVote:
		args, err := decodeVoteArgs(payload)
		if err != nil {
			return "", err
		}
		weight, err := d.engine.Vote(env, args.ProposalID, args.Weight)
		if err != nil {
			return "", err
		}
		return formatAmount(weight), nil

	case ActionAllocate:
		args, err := decodeAllocateArgs(payload)
		if err != nil {
			return "", err
		}
		allocated, err := d.engine.AllocateFunds(env, args.ProposalID)
		if err != nil {
			return "", err
		}
		return formatAmount(allocated), nil

	case ActionBalance:
		account, err := decodeBalanceArgs(payload)
		if err != nil {
			return "", err
		}
		return formatAmount(d.engine.GetBalance(account)), nil

	case ActionGetProposal:
		id, err := decodeProposalGetArgs(payload)
		if err != nil {
			return "", err
		}
		p, err := d.engine.GetProposal(id)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("%w: encode proposal %d: %v", ErrCorruptState, id, err)
		}
		return string(b), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
}

func formatAmount(a Amount) string {
	return strconv.FormatUint(uint64(a), 10)
}
