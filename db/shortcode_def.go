package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ShortcodeDef is the backend's definition of one token name: the template
// that renders it and the editable field schema served to the builder UI.
// Fields holds the JSON-encoded field list; the registry package owns its
// decoded shape.
type ShortcodeDef struct {
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	Template  string          `json:"template"`
	Markdown  bool            `json:"markdown"`
	Fields    json.RawMessage `json:"fields"`
	CreatedAt time.Time       `json:"created_at"`
}

const getShortcodeDef = `
SELECT name, title, template, markdown, fields, created_at
FROM shortcode_defs
WHERE name = $1
`

func (s *SQLStore) GetShortcodeDef(ctx context.Context, name string) (ShortcodeDef, error) {
	var def ShortcodeDef

	row := s.connPool.QueryRow(ctx, getShortcodeDef, name)
	err := row.Scan(&def.Name, &def.Title, &def.Template, &def.Markdown, &def.Fields, &def.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ShortcodeDef{}, fmt.Errorf("%w: shortcode %q", ErrNotFound, name)
		}
		return ShortcodeDef{}, fmt.Errorf("failed to get shortcode definition: %w", err)
	}

	return def, nil
}

const listShortcodeDefs = `
SELECT name, title, template, markdown, fields, created_at
FROM shortcode_defs
ORDER BY name
`

func (s *SQLStore) ListShortcodeDefs(ctx context.Context) ([]ShortcodeDef, error) {
	rows, err := s.connPool.Query(ctx, listShortcodeDefs)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortcode definitions: %w", err)
	}
	defer rows.Close()

	var defs []ShortcodeDef
	for rows.Next() {
		var def ShortcodeDef
		if err := rows.Scan(&def.Name, &def.Title, &def.Template, &def.Markdown, &def.Fields, &def.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shortcode definition row: %w", err)
		}
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

type CreateShortcodeDefParams struct {
	Name     string
	Title    string
	Template string
	Markdown bool
	Fields   json.RawMessage
}

const createShortcodeDef = `
INSERT INTO shortcode_defs (name, title, template, markdown, fields)
VALUES ($1, $2, $3, $4, $5)
RETURNING name, title, template, markdown, fields, created_at
`

func (s *SQLStore) CreateShortcodeDef(ctx context.Context, arg CreateShortcodeDefParams) (ShortcodeDef, error) {
	var def ShortcodeDef

	row := s.connPool.QueryRow(ctx, createShortcodeDef,
		arg.Name,
		arg.Title,
		arg.Template,
		arg.Markdown,
		arg.Fields,
	)

	err := row.Scan(&def.Name, &def.Title, &def.Template, &def.Markdown, &def.Fields, &def.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ShortcodeDef{}, fmt.Errorf("%w: shortcode %q", ErrDuplicate, arg.Name)
		}
		return ShortcodeDef{}, fmt.Errorf("failed to create shortcode definition: %w", err)
	}

	return def, nil
}
