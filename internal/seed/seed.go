// Package seed loads certificates and experiences from a YAML file into the
// store. It is the only write path; the content API never writes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/portfolio/portfolio-api/internal/domain/certificate"
	"github.com/portfolio/portfolio-api/internal/domain/experience"
)

// File is the YAML seed document.
type File struct {
	Certificates []CertificateRecord `yaml:"certificates"`
	Experiences  []ExperienceRecord  `yaml:"experiences"`
}

// CertificateRecord is a certificate as written in the seed file.
type CertificateRecord struct {
	Title       string `yaml:"title"`
	Issuer      string `yaml:"issuer"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// ExperienceRecord is an experience as written in the seed file. An empty
// EndDate means ongoing.
type ExperienceRecord struct {
	Position    string `yaml:"position"`
	Company     string `yaml:"company"`
	StartDate   string `yaml:"startDate"`
	EndDate     string `yaml:"endDate"`
	Description string `yaml:"description"`
}

// Result counts the records written.
type Result struct {
	Certificates int
	Experiences  int
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Entities converts and validates every record. It fails on the first invalid
// record so that nothing is written from a partly broken file.
func (f *File) Entities() ([]*certificate.Entity, []*experience.Entity, error) {
	certs := make([]*certificate.Entity, 0, len(f.Certificates))
	for i, rec := range f.Certificates {
		date, err := parseDate(rec.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("certificates[%d].date: %w", i, err)
		}
		c := &certificate.Entity{
			Title:       strings.TrimSpace(rec.Title),
			Issuer:      strings.TrimSpace(rec.Issuer),
			Date:        date,
			Description: optional(rec.Description),
		}
		if err := c.Validate(); err != nil {
			return nil, nil, fmt.Errorf("certificates[%d]: %w", i, err)
		}
		certs = append(certs, c)
	}

	exps := make([]*experience.Entity, 0, len(f.Experiences))
	for i, rec := range f.Experiences {
		start, err := parseDate(rec.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("experiences[%d].startDate: %w", i, err)
		}
		e := &experience.Entity{
			Position:    strings.TrimSpace(rec.Position),
			Company:     strings.TrimSpace(rec.Company),
			StartDate:   start,
			Description: optional(rec.Description),
		}
		if strings.TrimSpace(rec.EndDate) != "" {
			end, err := parseDate(rec.EndDate)
			if err != nil {
				return nil, nil, fmt.Errorf("experiences[%d].endDate: %w", i, err)
			}
			e.EndDate = &end
		}
		if err := e.Validate(); err != nil {
			return nil, nil, fmt.Errorf("experiences[%d]: %w", i, err)
		}
		exps = append(exps, e)
	}

	return certs, exps, nil
}

// Apply validates the whole file, then inserts records in file order. The
// inserts are not atomic; ApplySQL wraps them in a transaction.
func Apply(ctx context.Context, f *File, certs certificate.Repository, exps experience.Repository) (Result, error) {
	var res Result

	certEntities, expEntities, err := f.Entities()
	if err != nil {
		return res, err
	}

	for _, c := range certEntities {
		if err := certs.Create(ctx, c); err != nil {
			return res, err
		}
		res.Certificates++
	}
	for _, e := range expEntities {
		if err := exps.Create(ctx, e); err != nil {
			return res, err
		}
		res.Experiences++
	}
	return res, nil
}

// ApplySQL is Apply inside one transaction: a store error part way through
// rolls back every record inserted before it.
func ApplySQL(ctx context.Context, db *sqlx.DB, f *File) (Result, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := Apply(ctx, f, certificate.NewRepository(tx), experience.NewRepository(tx))
	if err != nil {
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit seed transaction: %w", err)
	}
	return res, nil
}

// parseDate accepts YYYY-MM-DD and RFC 3339. A blank value yields the zero
// time, which validation then rejects as missing.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
