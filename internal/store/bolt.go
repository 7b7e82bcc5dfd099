package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/theirongolddev/dledger/internal/model"
)

var ledgerBucket = []byte("ledger")

// Bolt keeps the debt list in a bbolt file under one bucket.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens or creates the bbolt file at path.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(ledgerBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Close closes the bolt file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Load reads the debt list. A missing key yields an empty list.
func (b *Bolt) Load() ([]model.DebtRecord, error) {
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bk := tx.Bucket(ledgerBucket)
		if bk == nil {
			return nil
		}
		// bbolt values are only valid inside the transaction.
		if v := bk.Get([]byte(Key)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Key, err)
	}
	return Decode(data), nil
}

// Save replaces the stored debt list.
func (b *Bolt) Save(records []model.DebtRecord) error {
	data, err := Encode(records)
	if err != nil {
		return fmt.Errorf("encoding debts: %w", err)
	}
	return b.putRaw(data)
}

func (b *Bolt) putRaw(data []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists(ledgerBucket)
		if err != nil {
			return err
		}
		return bk.Put([]byte(Key), data)
	})
}
