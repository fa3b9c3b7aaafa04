package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/berrythewa/copycopy/internal/actions"
	"github.com/berrythewa/copycopy/internal/source"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/google/uuid"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const (
	actionsBucket = "actions"
	metaBucket    = "meta"
	seededKey     = "seeded"
)

var (
	ErrActionNotFound  = errors.New("action not found")
	ErrBuiltInAction   = errors.New("built-in actions cannot be removed")
	ErrDuplicateAction = errors.New("action already exists")
	ErrInvalidPosition = errors.New("position out of range")
)

// ActionStoreInterface defines the methods for ActionStore
type ActionStoreInterface interface {
	Load() ([]actions.CustomAction, error)
	Save(list []actions.CustomAction) error
	Add(a actions.CustomAction) error
	Update(a actions.CustomAction) error
	Remove(id uuid.UUID) error
	SetEnabled(id uuid.UUID, enabled bool) error
	Move(from, to int) error
	Reset() error
	Enabled(kind types.Kind, ctx source.Context, entity types.Entity) ([]actions.CustomAction, error)
	Close() error
}

// ActionStore persists the ordered list of custom actions in BoltDB. Each
// action is stored as JSON under its big-endian position so that bucket
// order is list order.
type ActionStore struct {
	db     *bbolt.DB
	logger *zap.Logger
}

// StoreConfig holds configuration for ActionStore initialization
type StoreConfig struct {
	DBPath string
	Logger *zap.Logger
}

// NewActionStore opens (or creates) the database at cfg.DBPath. A new
// database is seeded with the default actions; an existing one gets any
// built-in action it is missing appended.
func NewActionStore(cfg StoreConfig) (*ActionStore, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := bbolt.Open(cfg.DBPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	s := &ActionStore{db: db, logger: logger}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(actionsBucket)); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		meta, err := tx.CreateBucketIfNotExists([]byte(metaBucket))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if meta.Get([]byte(seededKey)) == nil {
			if err := writeActions(tx, actions.DefaultActions()); err != nil {
				return err
			}
			return meta.Put([]byte(seededKey), []byte(time.Now().UTC().Format(time.RFC3339)))
		}

		list, err := readActions(tx)
		if err != nil {
			return err
		}
		merged, added := mergeDefaults(list)
		if added == 0 {
			return nil
		}
		logger.Info("Adding missing built-in actions", zap.Int("count", added))
		return writeActions(tx, merged)
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("ActionStore initialized", zap.String("db_path", cfg.DBPath))
	return s, nil
}

// Load returns all actions in display order
func (s *ActionStore) Load() ([]actions.CustomAction, error) {
	var list []actions.CustomAction
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		list, err = readActions(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Save replaces the stored list
func (s *ActionStore) Save(list []actions.CustomAction) error {
	for _, a := range list {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return writeActions(tx, list)
	})
}

// Add appends a new action
func (s *ActionStore) Add(a actions.CustomAction) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.modify(func(list []actions.CustomAction) ([]actions.CustomAction, error) {
		if indexOf(list, a.ID) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAction, a.ID)
		}
		a.BuiltIn = false
		s.logger.Info("Action added", zap.String("name", a.Name), zap.String("id", a.ID.String()))
		return append(list, a), nil
	})
}

// Update replaces the action with the same ID. The built-in flag of the
// stored action is preserved.
func (s *ActionStore) Update(a actions.CustomAction) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.modify(func(list []actions.CustomAction) ([]actions.CustomAction, error) {
		i := indexOf(list, a.ID)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrActionNotFound, a.ID)
		}
		a.BuiltIn = list[i].BuiltIn
		list[i] = a
		return list, nil
	})
}

// Remove deletes a user action. Built-in actions can only be disabled.
func (s *ActionStore) Remove(id uuid.UUID) error {
	return s.modify(func(list []actions.CustomAction) ([]actions.CustomAction, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrActionNotFound, id)
		}
		if list[i].BuiltIn {
			return nil, fmt.Errorf("%w: %s", ErrBuiltInAction, list[i].Name)
		}
		s.logger.Info("Action removed", zap.String("name", list[i].Name))
		return append(list[:i], list[i+1:]...), nil
	})
}

// SetEnabled toggles an action
func (s *ActionStore) SetEnabled(id uuid.UUID, enabled bool) error {
	return s.modify(func(list []actions.CustomAction) ([]actions.CustomAction, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrActionNotFound, id)
		}
		list[i].Enabled = enabled
		return list, nil
	})
}

// Move moves the action at index from so that it ends up at index to
func (s *ActionStore) Move(from, to int) error {
	return s.modify(func(list []actions.CustomAction) ([]actions.CustomAction, error) {
		if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
			return nil, fmt.Errorf("%w: move %d -> %d of %d", ErrInvalidPosition, from, to, len(list))
		}
		a := list[from]
		list = append(list[:from], list[from+1:]...)
		list = append(list[:to], append([]actions.CustomAction{a}, list[to:]...)...)
		return list, nil
	})
}

// Reset restores the default actions, dropping user actions
func (s *ActionStore) Reset() error {
	s.logger.Info("Resetting actions to defaults")
	return s.db.Update(func(tx *bbolt.Tx) error {
		return writeActions(tx, actions.DefaultActions())
	})
}

// Enabled returns the enabled actions applying to a capture, in order
func (s *ActionStore) Enabled(kind types.Kind, ctx source.Context, entity types.Entity) ([]actions.CustomAction, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	var out []actions.CustomAction
	for _, a := range list {
		if a.Matches(kind, ctx, entity) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *ActionStore) Close() error {
	return s.db.Close()
}

func (s *ActionStore) modify(fn func([]actions.CustomAction) ([]actions.CustomAction, error)) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		list, err := readActions(tx)
		if err != nil {
			return err
		}
		list, err = fn(list)
		if err != nil {
			return err
		}
		return writeActions(tx, list)
	})
}

func readActions(tx *bbolt.Tx) ([]actions.CustomAction, error) {
	b := tx.Bucket([]byte(actionsBucket))
	if b == nil {
		return nil, fmt.Errorf("bucket %q not found", actionsBucket)
	}
	var list []actions.CustomAction
	err := b.ForEach(func(k, v []byte) error {
		var a actions.CustomAction
		if err := json.Unmarshal(v, &a); err != nil {
			return fmt.Errorf("failed to unmarshal action %x: %w", k, err)
		}
		list = append(list, a)
		return nil
	})
	return list, err
}

func writeActions(tx *bbolt.Tx, list []actions.CustomAction) error {
	if err := tx.DeleteBucket([]byte(actionsBucket)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
		return fmt.Errorf("failed to clear actions: %w", err)
	}
	b, err := tx.CreateBucket([]byte(actionsBucket))
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	for i, a := range list {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal action %q: %w", a.Name, err)
		}
		if err := b.Put(positionKey(i), data); err != nil {
			return fmt.Errorf("failed to store action %q: %w", a.Name, err)
		}
	}
	return nil
}

func positionKey(i int) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(i))
	return key
}

func indexOf(list []actions.CustomAction, id uuid.UUID) int {
	for i, a := range list {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// mergeDefaults appends built-in actions missing from list
func mergeDefaults(list []actions.CustomAction) ([]actions.CustomAction, int) {
	added := 0
	for _, d := range actions.DefaultActions() {
		if indexOf(list, d.ID) < 0 {
			list = append(list, d)
			added++
		}
	}
	return list, added
}
