package experience

import (
	"context"
	"time"

	"github.com/portfolio/portfolio-api/internal/pkg/errorhandler"
	"github.com/portfolio/portfolio-api/internal/pkg/validator"
)

// Entity is a work or study period. A nil EndDate means it is ongoing.
type Entity struct {
	ID          string     `db:"id" json:"_id"`
	Position    string     `db:"position" json:"position" validate:"required,notblank"`
	Company     string     `db:"company" json:"company" validate:"required,notblank"`
	StartDate   time.Time  `db:"start_date" json:"startDate" validate:"required"`
	EndDate     *time.Time `db:"end_date" json:"endDate" validate:"omitempty,gtefield=StartDate"`
	Description *string    `db:"description" json:"description,omitempty"`
}

// Ongoing reports whether the experience has no end date.
func (e *Entity) Ongoing() bool {
	return e.EndDate == nil
}

// Validate checks the required fields and the date range.
func (e *Entity) Validate() error {
	return validator.Check(ErrInvalidExperience, e)
}

func (e *Entity) normalize() {
	e.StartDate = e.StartDate.UTC()
	if e.EndDate != nil {
		end := e.EndDate.UTC()
		e.EndDate = &end
	}
}

// keepValid drops records that fail validation. They can only exist through
// direct store edits and are never served.
func keepValid(ctx context.Context, items []*Entity) []*Entity {
	valid := make([]*Entity, 0, len(items))
	for _, item := range items {
		if fields := validator.Validate(item); fields != nil {
			errorhandler.LogValidationError(ctx, "experience:"+item.ID, fields)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}
