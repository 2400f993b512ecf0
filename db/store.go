package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the persistence surface of the CMS: pages (bodies stored as
// bracket-token text, never rendered HTML), shortcode definitions, and
// uploaded media assets.
type Store interface {
	CreatePage(ctx context.Context, arg CreatePageParams) (Page, error)
	GetPage(ctx context.Context, id uuid.UUID) (Page, error)
	GetPageBySlug(ctx context.Context, slug string) (Page, error)
	ListPages(ctx context.Context, arg ListPagesParams) ([]Page, error)
	UpdatePage(ctx context.Context, arg UpdatePageParams) (Page, error)
	DeletePage(ctx context.Context, id uuid.UUID) error

	GetShortcodeDef(ctx context.Context, name string) (ShortcodeDef, error)
	ListShortcodeDefs(ctx context.Context) ([]ShortcodeDef, error)
	CreateShortcodeDef(ctx context.Context, arg CreateShortcodeDefParams) (ShortcodeDef, error)

	CreateMediaAsset(ctx context.Context, arg CreateMediaAssetParams) (MediaAsset, error)
	ListMediaAssets(ctx context.Context, arg ListMediaAssetsParams) ([]MediaAsset, error)

	Shutdown()
}

type SQLStore struct {
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{connPool: connPool}
}

// Shutdown closes the underlying connection pool.
func (s *SQLStore) Shutdown() {
	s.connPool.Close()
}
