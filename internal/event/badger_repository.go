package event

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"
)

const eventKeyPrefix = "event:"

// ===========================
// 🗄 Badger Repository — embedded key-value alternative to the JSON file.
// Records live under zero-padded sequence keys so a prefix scan yields
// insertion order.
type BadgerRepository struct {
	db  *badger.DB
	seq *badger.Sequence
}

func NewBadgerRepository(path string) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}
	repo, err := newBadgerRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func newBadgerRepository(db *badger.DB) (*BadgerRepository, error) {
	seq, err := db.GetSequence([]byte("_event-seq"), 100)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event sequence: %w", err)
	}
	return &BadgerRepository{db: db, seq: seq}, nil
}

func (r *BadgerRepository) Append(e Event) error {
	n, err := r.seq.Next()
	if err != nil {
		return fmt.Errorf("failed to advance event sequence: %w", err)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	key := fmt.Sprintf("%s%020d", eventKeyPrefix, n)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), data); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
		return nil
	})
}

func (r *BadgerRepository) LoadAll() ([]Event, error) {
	events := []Event{}

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(eventKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("failed to copy event data: %w", err)
			}

			var e Event
			if err := json.Unmarshal(data, &e); err != nil {
				return fmt.Errorf("failed to deserialize event data: %w", err)
			}
			events = append(events, e)
		}
		return nil
	})
	if err != nil {
		log.Printf("Error reading events from badger: %v", err)
		return nil, err
	}
	return events, nil
}

func (r *BadgerRepository) Close() error {
	if err := r.seq.Release(); err != nil {
		log.Printf("Error releasing event sequence: %v", err)
	}
	return r.db.Close()
}
