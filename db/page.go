package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sdeepak1/cms/util"
)

// Page is one editable page. Body always holds bracket-token text; rendered
// shortcode markup never reaches the database.
type Page struct {
	ID        uuid.UUID   `json:"id"`
	Slug      string      `json:"slug"`
	Title     pgtype.Text `json:"title"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type CreatePageParams struct {
	Slug  string
	Title *string
	Body  string
}

const createPage = `
INSERT INTO pages (id, slug, title, body)
VALUES ($1, $2, $3, $4)
RETURNING id, slug, title, body, created_at, updated_at
`

func (s *SQLStore) CreatePage(ctx context.Context, arg CreatePageParams) (Page, error) {
	var page Page

	row := s.connPool.QueryRow(ctx, createPage,
		uuid.New(),
		arg.Slug,
		util.StringToPgxText(arg.Title),
		arg.Body,
	)

	err := row.Scan(&page.ID, &page.Slug, &page.Title, &page.Body, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Page{}, fmt.Errorf("%w: page slug %q", ErrDuplicate, arg.Slug)
		}
		return Page{}, fmt.Errorf("failed to create page: %w", err)
	}

	return page, nil
}

const getPage = `
SELECT id, slug, title, body, created_at, updated_at
FROM pages
WHERE id = $1
`

func (s *SQLStore) GetPage(ctx context.Context, id uuid.UUID) (Page, error) {
	var page Page

	row := s.connPool.QueryRow(ctx, getPage, id)
	err := row.Scan(&page.ID, &page.Slug, &page.Title, &page.Body, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Page{}, fmt.Errorf("%w: page %s", ErrNotFound, id)
		}
		return Page{}, fmt.Errorf("failed to get page: %w", err)
	}

	return page, nil
}

const getPageBySlug = `
SELECT id, slug, title, body, created_at, updated_at
FROM pages
WHERE slug = $1
`

func (s *SQLStore) GetPageBySlug(ctx context.Context, slug string) (Page, error) {
	var page Page

	row := s.connPool.QueryRow(ctx, getPageBySlug, slug)
	err := row.Scan(&page.ID, &page.Slug, &page.Title, &page.Body, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Page{}, fmt.Errorf("%w: page slug %q", ErrNotFound, slug)
		}
		return Page{}, fmt.Errorf("failed to get page by slug: %w", err)
	}

	return page, nil
}

type ListPagesParams struct {
	Limit  int32
	Offset int32
}

const listPages = `
SELECT id, slug, title, body, created_at, updated_at
FROM pages
ORDER BY updated_at DESC
LIMIT $1 OFFSET $2
`

func (s *SQLStore) ListPages(ctx context.Context, arg ListPagesParams) ([]Page, error) {
	rows, err := s.connPool.Query(ctx, listPages, arg.Limit, arg.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		var page Page
		if err := rows.Scan(&page.ID, &page.Slug, &page.Title, &page.Body, &page.CreatedAt, &page.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

type UpdatePageParams struct {
	ID    uuid.UUID
	Title *string
	Body  string
}

const updatePage = `
UPDATE pages
SET title = COALESCE($2, title),
    body = $3,
    updated_at = now()
WHERE id = $1
RETURNING id, slug, title, body, created_at, updated_at
`

func (s *SQLStore) UpdatePage(ctx context.Context, arg UpdatePageParams) (Page, error) {
	var page Page

	row := s.connPool.QueryRow(ctx, updatePage,
		arg.ID,
		util.StringToPgxText(arg.Title),
		arg.Body,
	)

	err := row.Scan(&page.ID, &page.Slug, &page.Title, &page.Body, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Page{}, fmt.Errorf("%w: page %s", ErrNotFound, arg.ID)
		}
		return Page{}, fmt.Errorf("failed to update page: %w", err)
	}

	return page, nil
}

const deletePage = `
DELETE FROM pages
WHERE id = $1
`

func (s *SQLStore) DeletePage(ctx context.Context, id uuid.UUID) error {
	tag, err := s.connPool.Exec(ctx, deletePage, id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: page %s", ErrNotFound, id)
	}

	return nil
}
