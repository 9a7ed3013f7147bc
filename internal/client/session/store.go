// Package session persists the signed-in user's token across runs. It is
// the terminal counterpart of browser local storage: one token, one
// username, both cleared together on sign-out.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/brainly/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/brainly/internal/common"
	"github.com/dmitrijs2005/brainly/internal/dbx"
)

// Store holds the session. Token returns "" when nobody is signed in.
type Store interface {
	Token(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
	Save(ctx context.Context, token, username string) error
	Clear(ctx context.Context) error
}

// HasToken reports whether a non-empty token is stored.
func HasToken(ctx context.Context, s Store) bool {
	t, err := s.Token(ctx)
	return err == nil && t != ""
}

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, common.SessionTokenKey)
}

func (s *SQLiteStore) Username(ctx context.Context) (string, error) {
	return s.get(ctx, common.SessionUsernameKey)
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save replaces token and username in one transaction. A blank username
// removes any previously stored one.
func (s *SQLiteStore) Save(ctx context.Context, token, username string) error {
	if token == "" {
		return fmt.Errorf("save session: %w", common.ErrorEmptyField)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, []byte(token)); err != nil {
			return err
		}
		if username == "" {
			return repo.Delete(ctx, common.SessionUsernameKey)
		}
		return repo.Set(ctx, common.SessionUsernameKey, []byte(username))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.SessionTokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.SessionUsernameKey)
	})
}

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	username string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) Username(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username, nil
}

func (m *MemoryStore) Save(_ context.Context, token, username string) error {
	if token == "" {
		return fmt.Errorf("save session: %w", common.ErrorEmptyField)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.username = token, username
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.username = "", ""
	return nil
}
