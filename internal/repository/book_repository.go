package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/bookworm-labs/bookvault/internal/model"
)

// BookRepo provides access to the `saved_books` table. Every mutation is
// a single atomic statement keyed on (user_id, book_id); there is no
// read-modify-write cycle anywhere, so concurrent saves and removals for
// the same user cannot race each other into a duplicate row.
type BookRepo struct{ DB *sql.DB }

func NewBookRepo(db *sql.DB) *BookRepo { return &BookRepo{DB: db} }

// Save upserts a book into the user's collection. Saving an already-saved
// book refreshes its metadata snapshot and is otherwise a no-op; the
// composite primary key guarantees the book appears exactly once.
func (r *BookRepo) Save(ctx context.Context, userID uint64, b model.Book) error {
	authors, err := json.Marshal(b.Authors)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO saved_books (user_id, book_id, title, authors, description, image, link)
		 VALUES (?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   title=VALUES(title), authors=VALUES(authors),
		   description=VALUES(description), image=VALUES(image), link=VALUES(link)`,
		userID, b.BookID, b.Title, string(authors), b.Description, b.Image, b.Link)
	return err
}

// Remove deletes a book from the user's collection. Removing a book that
// was never saved is a no-op, not an error.
func (r *BookRepo) Remove(ctx context.Context, userID uint64, bookID string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM saved_books WHERE user_id=? AND book_id=?",
		userID, bookID)
	return err
}

// CountByUser returns the size of the user's collection without loading
// the rows. The public user directory reports counts for every account,
// so this stays a single aggregate per user.
func (r *BookRepo) CountByUser(ctx context.Context, userID uint64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM saved_books WHERE user_id=?",
		userID).Scan(&n)
	return n, err
}

// ListByUser returns the user's saved books in save order.
func (r *BookRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Book, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT book_id, title, authors, description, image, link
		 FROM saved_books WHERE user_id=? ORDER BY created_at, book_id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var (
			b       model.Book
			authors sql.NullString
		)
		if err := rows.Scan(&b.BookID, &b.Title, &authors, &b.Description, &b.Image, &b.Link); err != nil {
			return nil, err
		}
		if authors.Valid && authors.String != "" {
			if err := json.Unmarshal([]byte(authors.String), &b.Authors); err != nil {
				return nil, err
			}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
