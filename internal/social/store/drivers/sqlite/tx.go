package sqlite

import (
	"context"
	"database/sql"

	"github.com/upchain/social/internal/social/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // applied before any tx starts

func (t *txStore) Users() store.Users                 { return &usersRepo{q: t.tx} }
func (t *txStore) Follows() store.Follows             { return &followsRepo{q: t.tx} }
func (t *txStore) Notifications() store.Notifications { return &notificationsRepo{q: t.tx} }
func (t *txStore) Posts() store.Posts                 { return &postsRepo{q: t.tx} }
func (t *txStore) Comments() store.Comments           { return &commentsRepo{q: t.tx} }
func (t *txStore) Saved() store.Saved                 { return &savedRepo{q: t.tx} }
func (t *txStore) Conversations() store.Conversations { return &conversationsRepo{q: t.tx} }
func (t *txStore) Messages() store.Messages           { return &messagesRepo{q: t.tx} }
