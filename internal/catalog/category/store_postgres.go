package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codeflix/catalog/internal/platform/database/schema"
	"github.com/codeflix/catalog/internal/platform/dberr"
	"github.com/codeflix/catalog/pkg/pagination"
)

// sortColumns is the allow-list of sortable fields for category searches.
// Requested fields outside this list fall back to name.
var sortColumns = map[string]string{
	"name":      schema.RefCategory.Name,
	"id":        schema.RefCategory.ID,
	"createdat": schema.RefCategory.CreatedAt,
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Insert(ctx context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		schema.RefCategory.Table, schema.RefCategory.ID, schema.RefCategory.Name,
		schema.RefCategory.Description, schema.RefCategory.IsActive, schema.RefCategory.CreatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.IsActive, category.CreatedAt,
	)
	return dberr.Wrap(err, "insert_category")
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.IsActive, schema.RefCategory.CreatedAt,
		schema.RefCategory.Table, schema.RefCategory.ID,
	)

	c := &Category{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, notFound(id)
		}
		return nil, dberr.Wrap(err, "get_category")
	}
	return c, nil
}

func (repository *PostgresRepository) Update(ctx context.Context, category *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1
	`,
		schema.RefCategory.Table, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.IsActive, schema.RefCategory.ID,
	)

	cmd, err := repository.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_category")
	}
	if cmd.RowsAffected() == 0 {
		return notFound(category.ID)
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefCategory.Table, schema.RefCategory.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}
	if cmd.RowsAffected() == 0 {
		return notFound(id)
	}
	return nil
}

func (repository *PostgresRepository) Search(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Category], error) {
	out := pagination.SearchOutput[*Category]{
		CurrentPage: input.Page,
		PerPage:     input.PerPage,
		Items:       []*Category{},
	}

	where := ""
	args := []any{}
	if input.Term != "" {
		where = fmt.Sprintf(" WHERE %s ILIKE $1", schema.RefCategory.Name)
		args = append(args, "%"+input.Term+"%")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefCategory.Table) + where
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&out.Total); err != nil {
		return out, dberr.Wrap(err, "count_categories")
	}

	order := pagination.OrderClause(input.Sort, input.Dir, sortColumns, schema.RefCategory.Name, schema.RefCategory.ID)
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.IsActive, schema.RefCategory.CreatedAt,
		schema.RefCategory.Table, where, order, len(args)+1, len(args)+2,
	)
	args = append(args, input.PerPage, input.Offset())

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return out, dberr.Wrap(err, "search_categories")
	}
	defer rows.Close()

	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt); err != nil {
			return out, dberr.Wrap(err, "scan_category")
		}
		out.Items = append(out.Items, c)
	}
	if err := rows.Err(); err != nil {
		return out, dberr.Wrap(err, "search_categories")
	}

	return out, nil
}

func (repository *PostgresRepository) ListIDsByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		schema.RefCategory.ID, schema.RefCategory.Table, schema.RefCategory.ID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "list_category_ids")
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_category_id")
		}
		found = append(found, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_category_ids")
	}

	return found, nil
}
