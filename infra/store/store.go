// Package store is the closed-order archive. The event sink writes every
// order's terminal record here, giving history consumers a durable copy that
// is independent of the in-memory registry and the journal's lifetime.
package store

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

var ErrNotFound = errors.New("store: not found")

type Archive struct {
	db *pebble.DB
}

func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Put stores the encoded terminal record of one order. Archival is not on
// the durability path (the journal is), so writes are async.
func (a *Archive) Put(id uint64, value []byte) error {
	return a.db.Set(keyFor(id), value, pebble.NoSync)
}

func (a *Archive) Get(id uint64) ([]byte, error) {
	val, closer, err := a.db.Get(keyFor(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func keyFor(id uint64) []byte {
	return []byte(fmt.Sprintf("order/%020d", id))
}
