package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcollab/internal/client/storage"
)

const (
	keyDisplayName   = "display_name"
	keyLastWorkspace = "last_workspace"
)

// SaveDisplayName saves the last chosen display name
func (s *Storage) SaveDisplayName(ctx context.Context, name string) error {
	if err := s.put(keyDisplayName, name); err != nil {
		return fmt.Errorf("failed to save display name: %w", err)
	}
	return nil
}

// GetDisplayName returns the saved display name or "" if none was saved
func (s *Storage) GetDisplayName(ctx context.Context) (string, error) {
	name, err := s.get(keyDisplayName)
	if err != nil {
		return "", fmt.Errorf("failed to get display name: %w", err)
	}
	return name, nil
}

// SaveLastWorkspace saves the id of the last chosen workspace
func (s *Storage) SaveLastWorkspace(ctx context.Context, workspaceID string) error {
	if err := s.put(keyLastWorkspace, workspaceID); err != nil {
		return fmt.Errorf("failed to save last workspace: %w", err)
	}
	return nil
}

// GetLastWorkspace returns the saved workspace id or "" if none was saved
func (s *Storage) GetLastWorkspace(ctx context.Context) (string, error) {
	id, err := s.get(keyLastWorkspace)
	if err != nil {
		return "", fmt.Errorf("failed to get last workspace: %w", err)
	}
	return id, nil
}

func (s *Storage) put(key, value string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return storage.ErrBucketNotFound
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}

func (s *Storage) get(key string) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return storage.ErrBucketNotFound
		}
		// Get возвращает срез, валидный только внутри транзакции
		if data := bucket.Get([]byte(key)); data != nil {
			value = string(data)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}
