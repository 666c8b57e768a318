package certificate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository reads and records certificates.
type Repository interface {
	// List returns every certificate, newest date first, ties in insertion order.
	List(ctx context.Context) ([]*Entity, error)
	// Create validates and stores a certificate, assigning its ID.
	Create(ctx context.Context, c *Entity) error
}

type repositoryImpl struct {
	db sqlx.ExtContext
}

// NewRepository creates a SQL backed certificate repository. db may be a
// *sqlx.DB or a *sqlx.Tx.
func NewRepository(db sqlx.ExtContext) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) List(ctx context.Context) ([]*Entity, error) {
	query := `SELECT id, title, issuer, issued_at, description
	          FROM certificates
	          ORDER BY issued_at DESC, seq ASC`

	var items []*Entity
	if err := sqlx.SelectContext(ctx, r.db, &items, query); err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	for _, item := range items {
		item.Date = item.Date.UTC()
	}
	return keepValid(ctx, items), nil
}

func (r *repositoryImpl) Create(ctx context.Context, c *Entity) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.NewString()
	c.Date = c.Date.UTC()

	query := r.db.Rebind(`INSERT INTO certificates (id, title, issuer, issued_at, description)
	          VALUES (?, ?, ?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Title, c.Issuer, c.Date, c.Description); err != nil {
		c.ID = ""
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}
