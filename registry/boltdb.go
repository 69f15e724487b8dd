package registry

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/receiptstack/receipt-extraction/dto"
)

const cardBucketName = "cards"

// Store defines the persistence interface for card records
type Store interface {
	// SaveCard writes a card record, overwriting any record with the same ID
	SaveCard(card *dto.Card) error

	// GetCard retrieves a card by ID
	GetCard(id string) (*dto.Card, error)

	// ListCards returns all cards
	ListCards() ([]*dto.Card, error)

	// DeleteCard removes a card
	DeleteCard(id string) error

	// Close closes the store
	Close() error
}

// BoltStore implements the Store interface using BoltDB
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (creating if needed) a BoltDB file for card records
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cardBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// SaveCard writes a card record
func (b *BoltStore) SaveCard(card *dto.Card) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(cardBucketName))
		data, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("marshaling card: %w", err)
		}
		return bucket.Put([]byte(card.ID), data)
	})
}

// GetCard retrieves a card by ID
func (b *BoltStore) GetCard(id string) (*dto.Card, error) {
	var card *dto.Card
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(cardBucketName))
		data := bucket.Get([]byte(id))
		if data == nil {
			return ErrCardNotFound
		}
		return json.Unmarshal(data, &card)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ListCards returns all cards
func (b *BoltStore) ListCards() ([]*dto.Card, error) {
	cards := make([]*dto.Card, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(cardBucketName))
		return bucket.ForEach(func(k, v []byte) error {
			var card dto.Card
			if err := json.Unmarshal(v, &card); err != nil {
				return fmt.Errorf("unmarshaling card: %w", err)
			}
			cards = append(cards, &card)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// DeleteCard removes a card
func (b *BoltStore) DeleteCard(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(cardBucketName))
		if bucket.Get([]byte(id)) == nil {
			return ErrCardNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

// Close closes the underlying database
func (b *BoltStore) Close() error {
	return b.db.Close()
}
