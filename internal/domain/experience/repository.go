package experience

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository reads and records experiences.
type Repository interface {
	// List returns every experience, latest start first, ties in insertion order.
	List(ctx context.Context) ([]*Entity, error)
	// Create validates and stores an experience, assigning its ID.
	Create(ctx context.Context, exp *Entity) error
}

type repositoryImpl struct {
	db sqlx.ExtContext
}

// NewRepository creates a SQL backed experience repository. db may be a
// *sqlx.DB or a *sqlx.Tx.
func NewRepository(db sqlx.ExtContext) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) List(ctx context.Context) ([]*Entity, error) {
	query := `SELECT id, position, company, start_date, end_date, description
	          FROM experiences
	          ORDER BY start_date DESC, seq ASC`

	var items []*Entity
	if err := sqlx.SelectContext(ctx, r.db, &items, query); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	for _, item := range items {
		item.normalize()
	}
	return keepValid(ctx, items), nil
}

func (r *repositoryImpl) Create(ctx context.Context, exp *Entity) error {
	if err := exp.Validate(); err != nil {
		return err
	}

	exp.ID = uuid.NewString()
	exp.normalize()

	query := r.db.Rebind(`INSERT INTO experiences (id, position, company, start_date, end_date, description)
	          VALUES (?, ?, ?, ?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, exp.ID, exp.Position, exp.Company, exp.StartDate, exp.EndDate, exp.Description); err != nil {
		exp.ID = ""
		return fmt.Errorf("create experience: %w", err)
	}
	return nil
}
