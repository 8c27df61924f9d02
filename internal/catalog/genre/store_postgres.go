package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codeflix/catalog/internal/platform/database/schema"
	"github.com/codeflix/catalog/internal/platform/dberr"
	"github.com/codeflix/catalog/pkg/pagination"
)

var sortColumns = map[string]string{
	"name":      "g." + schema.RefGenre.Name,
	"id":        "g." + schema.RefGenre.ID,
	"createdat": "g." + schema.RefGenre.CreatedAt,
}

// categoryLinks selects a genre's category ids as a text array, empty when the
// genre has no links.
var categoryLinks = fmt.Sprintf(
	`COALESCE(array_agg(gc.%s::text) FILTER (WHERE gc.%s IS NOT NULL), '{}')`,
	schema.GenreCategory.CategoryID, schema.GenreCategory.CategoryID,
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Insert(ctx context.Context, genre *Genre) error {
	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_insert_genre")
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
	`,
		schema.RefGenre.Table, schema.RefGenre.ID, schema.RefGenre.Name,
		schema.RefGenre.IsActive, schema.RefGenre.CreatedAt,
	)
	if _, err := tx.Exec(ctx, query, genre.ID, genre.Name, genre.IsActive, genre.CreatedAt); err != nil {
		return dberr.Wrap(err, "insert_genre")
	}

	if err := insertLinks(ctx, tx, genre); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_insert_genre")
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (*Genre, error) {
	query := fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s, g.%s, %s
		FROM %s g
		LEFT JOIN %s gc ON gc.%s = g.%s
		WHERE g.%s = $1
		GROUP BY g.%s
	`,
		schema.RefGenre.ID, schema.RefGenre.Name, schema.RefGenre.IsActive, schema.RefGenre.CreatedAt,
		categoryLinks,
		schema.RefGenre.Table,
		schema.GenreCategory.Table, schema.GenreCategory.GenreID, schema.RefGenre.ID,
		schema.RefGenre.ID,
		schema.RefGenre.ID,
	)

	g := &Genre{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.Categories,
	)
	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, notFound(id)
		}
		return nil, dberr.Wrap(err, "get_genre")
	}
	return g, nil
}

func (repository *PostgresRepository) Update(ctx context.Context, genre *Genre) error {
	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_update_genre")
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1
	`,
		schema.RefGenre.Table, schema.RefGenre.Name, schema.RefGenre.IsActive, schema.RefGenre.ID,
	)
	cmd, err := tx.Exec(ctx, query, genre.ID, genre.Name, genre.IsActive)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}
	if cmd.RowsAffected() == 0 {
		return notFound(genre.ID)
	}

	// The link set is replaced wholesale to match the entity.
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.GenreCategory.Table, schema.GenreCategory.GenreID,
	)
	if _, err := tx.Exec(ctx, deleteQuery, genre.ID); err != nil {
		return dberr.Wrap(err, "clear_genre_categories")
	}
	if err := insertLinks(ctx, tx, genre); err != nil {
		return err
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_update_genre")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	// Links go with the row via ON DELETE CASCADE.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefGenre.Table, schema.RefGenre.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}
	if cmd.RowsAffected() == 0 {
		return notFound(id)
	}
	return nil
}

func (repository *PostgresRepository) Search(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Genre], error) {
	out := pagination.SearchOutput[*Genre]{
		CurrentPage: input.Page,
		PerPage:     input.PerPage,
		Items:       []*Genre{},
	}

	where := ""
	args := []any{}
	if input.Term != "" {
		where = fmt.Sprintf(" WHERE g.%s ILIKE $1", schema.RefGenre.Name)
		args = append(args, "%"+input.Term+"%")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s g`, schema.RefGenre.Table) + where
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&out.Total); err != nil {
		return out, dberr.Wrap(err, "count_genres")
	}

	order := pagination.OrderClause(input.Sort, input.Dir, sortColumns, "g."+schema.RefGenre.Name, "g."+schema.RefGenre.ID)
	query := fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s, g.%s, %s
		FROM %s g
		LEFT JOIN %s gc ON gc.%s = g.%s
		%s
		GROUP BY g.%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`,
		schema.RefGenre.ID, schema.RefGenre.Name, schema.RefGenre.IsActive, schema.RefGenre.CreatedAt,
		categoryLinks,
		schema.RefGenre.Table,
		schema.GenreCategory.Table, schema.GenreCategory.GenreID, schema.RefGenre.ID,
		where,
		schema.RefGenre.ID,
		order, len(args)+1, len(args)+2,
	)
	args = append(args, input.PerPage, input.Offset())

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return out, dberr.Wrap(err, "search_genres")
	}
	defer rows.Close()

	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.Categories); err != nil {
			return out, dberr.Wrap(err, "scan_genre")
		}
		out.Items = append(out.Items, g)
	}
	if err := rows.Err(); err != nil {
		return out, dberr.Wrap(err, "search_genres")
	}

	return out, nil
}

// insertLinks bulk-inserts the genre's category links inside tx.
func insertLinks(ctx context.Context, tx pgx.Tx, genre *Genre) error {
	if len(genre.Categories) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, unnest($2::uuid[])
	`,
		schema.GenreCategory.Table, schema.GenreCategory.GenreID, schema.GenreCategory.CategoryID,
	)
	_, err := tx.Exec(ctx, query, genre.ID, genre.Categories)
	return dberr.Wrap(err, "insert_genre_categories")
}
