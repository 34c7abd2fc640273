// Package bank keeps boxed records outside of a save file, keyed by KSUID so
// that listing returns them in the order they were deposited.
package bank

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

var ErrNotFound = errors.New("record not found")

// Entry is a deposited record.
type Entry struct {
	ID     ksuid.KSUID
	Label  string
	Record *codec.Record
}

// Deposited returns the time the record was put in the bank.
func (e Entry) Deposited() time.Time {
	return e.ID.Time()
}

// Bank is a pebble backed record store. Records are stored at rest, the
// way the game keeps them in a box, followed by the label bytes.
type Bank struct {
	db *pebble.DB
}

func Open(path string) (*Bank, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open bank at %s: %w", path, err)
	}
	return &Bank{db: db}, nil
}

// Put deposits r and returns its new id.
func (b *Bank) Put(r *codec.Record, label string) (ksuid.KSUID, error) {
	id := ksuid.New()
	value := append(r.Encode(true), label...)
	if err := b.db.Set(id.Bytes(), value, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store record: %w", err)
	}
	return id, nil
}

// Get returns the record deposited as id.
func (b *Bank) Get(id ksuid.KSUID) (Entry, error) {
	value, closer, err := b.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, err
	}
	defer closer.Close()

	return decodeEntry(id, value)
}

// List returns every deposited record, oldest first.
func (b *Bank) List() ([]Entry, error) {
	iter, err := b.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, fmt.Errorf("corrupt bank key %x: %w", iter.Key(), err)
		}
		e, err := decodeEntry(id, iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, iter.Error()
}

// Delete removes the record deposited as id.
func (b *Bank) Delete(id ksuid.KSUID) error {
	if _, err := b.Get(id); err != nil {
		return err
	}
	return b.db.Delete(id.Bytes(), pebble.Sync)
}

func (b *Bank) Close() error {
	return b.db.Close()
}

func decodeEntry(id ksuid.KSUID, value []byte) (Entry, error) {
	// Parse copies what it needs; value is only valid until the closer runs.
	r, err := codec.Parse(value, true)
	if err != nil {
		return Entry{}, fmt.Errorf("corrupt bank entry %s: %w", id, err)
	}
	return Entry{
		ID:     id,
		Label:  string(value[codec.RecordSize:]),
		Record: r,
	}, nil
}
