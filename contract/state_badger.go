package contract

import (
	"github.com/dgraph-io/badger"
)

// BadgerState is the durable State implementation for hosts that park
// contract storage on disk. Storage failures panic; the surrounding host
// call aborts and rolls back, same as any other unrecoverable fault.
type BadgerState struct {
	db   *badger.DB
	path string
}

// NewBadgerState opens (or creates) the database under path. SyncWrites
// stays on: losing committed ledger rows is worse than the fsync cost.
func NewBadgerState(path string) (*BadgerState, error) {
	opts := badger.DefaultOptions(path).
		WithSyncWrites(true).
		WithLogger(nil)
	handle, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerState{db: handle, path: path}, nil
}

func (b *BadgerState) Set(key, value string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		panic(err)
	}
}

func (b *BadgerState) Get(key string) *string {
	var out *string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		s := string(val)
		out = &s
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}

func (b *BadgerState) Delete(key string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		panic(err)
	}
}

// Close flushes and releases the database handle.
func (b *BadgerState) Close() error {
	return b.db.Close()
}
