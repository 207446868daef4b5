package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/houseconnect/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/houseconnect/internal/common"
	"github.com/dmitrijs2005/houseconnect/internal/dbx"
)

// Storage persists the session between runs. Load returns empty values when
// nothing is stored. The identity is kept in its serialized form so that the
// store decides what counts as well-formed.
type Storage interface {
	Load(ctx context.Context) (token string, identity []byte, err error)
	Save(ctx context.Context, token string, identity []byte) error
	Clear(ctx context.Context) error
}

// SQLStorage keeps the session in the metadata table under the keys
// common.AuthTokenKey and common.UserKey.
type SQLStorage struct {
	db   *sql.DB
	repo func(dbx.DBTX) metadata.Repository
}

func NewSQLStorage(db *sql.DB) *SQLStorage {
	return &SQLStorage{db: db, repo: sqliteRepo}
}

func sqliteRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *SQLStorage) Load(ctx context.Context) (string, []byte, error) {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return "", nil, err
	}
	identity, err := repo.Get(ctx, common.UserKey)
	if err != nil {
		return "", nil, err
	}
	return string(token), identity, nil
}

// Save writes both entries in one transaction.
func (s *SQLStorage) Save(ctx context.Context, token string, identity []byte) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserKey, identity)
	})
}

// Clear removes only the session entries.
func (s *SQLStorage) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).DeleteMany(ctx, common.AuthTokenKey, common.UserKey)
	})
}
