package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// Kind names the backend a Store talks to.
type Kind string

const (
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
	KindMongo    Kind = "mongo"
)

// ErrUnsupportedURL is returned when the connection string scheme is unknown.
var ErrUnsupportedURL = errors.New("unsupported database url")

// Store is the process-wide store handle. Exactly one of SQL and Mongo is set.
type Store struct {
	Kind  Kind
	SQL   *sqlx.DB
	Mongo *mongo.Database
}

// Options tunes Open.
type Options struct {
	// MongoDatabase is the database used for mongodb:// URLs.
	MongoDatabase string
}

// KindOf maps a connection string to the backend it selects.
func KindOf(databaseURL string) (Kind, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return KindPostgres, nil
	case strings.HasPrefix(databaseURL, "mongodb://"), strings.HasPrefix(databaseURL, "mongodb+srv://"):
		return KindMongo, nil
	case strings.HasPrefix(databaseURL, "sqlite://"), strings.HasPrefix(databaseURL, "file:"), databaseURL == ":memory:":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedURL, schemeOf(databaseURL))
	}
}

// Open connects to the backend selected by databaseURL.
func Open(ctx context.Context, databaseURL string, opts Options) (*Store, error) {
	kind, err := KindOf(databaseURL)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindPostgres:
		db, err := NewPostgres(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &Store{Kind: kind, SQL: db}, nil
	case KindSQLite:
		db, err := NewSQLite(ctx, strings.TrimPrefix(databaseURL, "sqlite://"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &Store{Kind: kind, SQL: db}, nil
	default:
		name := opts.MongoDatabase
		if name == "" {
			name = "portfolio"
		}
		db, err := NewMongo(ctx, databaseURL, name)
		if err != nil {
			return nil, err
		}
		return &Store{Kind: kind, Mongo: db}, nil
	}
}

// Close releases the connection pool.
func (s *Store) Close(ctx context.Context) {
	if s == nil {
		return
	}

	var err error
	switch {
	case s.SQL != nil:
		err = s.SQL.Close()
	case s.Mongo != nil:
		err = s.Mongo.Client().Disconnect(ctx)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", string(s.Kind)).Msg("Error closing store connection")
		return
	}
	log.Info().Str("kind", string(s.Kind)).Msg("Store connection closed")
}

func schemeOf(databaseURL string) string {
	if i := strings.Index(databaseURL, "://"); i >= 0 {
		return databaseURL[:i]
	}
	return databaseURL
}
