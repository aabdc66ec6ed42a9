package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/platform/logger"
	"github.com/inkpost/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. If logger is nil, the default logger is used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Create implements store.PostStore.Create. created_at and updated_at are
// assigned by the database so they are equal on creation.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO posts (title, body, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		post.Title,
		post.Body,
		post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrAuthorNotFound, err)
		}
		// Prefer the request-scoped logger so the trace ID is attached.
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to insert post",
			"author_id", post.AuthorID,
			"error", err)
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID implements store.PostStore.GetByID.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, body, author_id, created_at, updated_at
		 FROM posts
		 WHERE id = $1`,
		id,
	).Scan(&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}
	return &post, nil
}

// escapeLike neutralizes LIKE metacharacters so a keyword is matched as a
// literal substring.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// List implements store.PostStore.List. Ordering is newest-first with the ID
// as a tiebreak so pagination is stable when several posts share a
// creation timestamp.
func (s *PostgresPostStore) List(
	ctx context.Context,
	filter store.PostFilter,
) ([]*domain.Post, int, error) {
	where := ""
	args := []any{}
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		where = `WHERE title ILIKE $1 OR body ILIKE $1`
		args = append(args, "%"+escapeLike(kw)+"%")
	}

	var total int
	countQuery := `SELECT count(*) FROM posts ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, title, body, author_id, created_at, updated_at
		 FROM posts %s
		 ORDER BY created_at DESC, id DESC
		 OFFSET $%d LIMIT $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, filter.Offset, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", "error", closeErr)
		}
	}()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListByAuthor implements store.PostStore.ListByAuthor.
func (s *PostgresPostStore) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, author_id, created_at, updated_at
		 FROM posts
		 WHERE author_id = $1
		 ORDER BY created_at DESC, id DESC`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by author: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", "error", closeErr)
		}
	}()

	return scanPosts(rows)
}

// scanPosts drains a post result set.
func scanPosts(rows *sql.Rows) ([]*domain.Post, error) {
	posts := []*domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Body,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}
	return posts, nil
}

// Update implements store.PostStore.Update. Supplied fields are applied in a
// single UPDATE statement, so a cancelled request can never leave a
// half-applied change.
func (s *PostgresPostStore) Update(
	ctx context.Context,
	id int64,
	update store.UpdatePost,
) (*domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRowContext(ctx,
		`UPDATE posts
		 SET title = COALESCE($2, title),
		     body = COALESCE($3, body),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING id, title, body, author_id, created_at, updated_at`,
		id,
		update.Title,
		update.Body,
	).Scan(&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update post",
			"post_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &post, nil
}

// Delete implements store.PostStore.Delete. Deleting an absent post is not
// an error; the bool tells the caller whether anything was removed.
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete post",
			"post_id", id,
			"error", err)
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// WithTx implements store.PostStore.WithTx.
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}
