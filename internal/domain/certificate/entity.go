package certificate

import (
	"context"
	"time"

	"github.com/portfolio/portfolio-api/internal/pkg/errorhandler"
	"github.com/portfolio/portfolio-api/internal/pkg/validator"
)

// Entity is a certificate as stored and as served.
type Entity struct {
	ID          string    `db:"id" json:"_id"`
	Title       string    `db:"title" json:"title" validate:"required,notblank"`
	Issuer      string    `db:"issuer" json:"issuer" validate:"required,notblank"`
	Date        time.Time `db:"issued_at" json:"date" validate:"required"`
	Description *string   `db:"description" json:"description,omitempty"`
}

// Validate checks the required fields.
func (e *Entity) Validate() error {
	return validator.Check(ErrInvalidCertificate, e)
}

// keepValid drops records that fail validation. They can only exist through
// direct store edits and are never served.
func keepValid(ctx context.Context, items []*Entity) []*Entity {
	valid := make([]*Entity, 0, len(items))
	for _, item := range items {
		if fields := validator.Validate(item); fields != nil {
			errorhandler.LogValidationError(ctx, "certificate:"+item.ID, fields)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}
