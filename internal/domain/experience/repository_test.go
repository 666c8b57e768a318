package experience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/portfolio-api/internal/pkg/database"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(ctx, db))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func strPtr(s string) *string { return &s }

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	closed := &Entity{
		Position:    "Frontend Intern",
		Company:     "Acme Labs",
		StartDate:   day(2023, time.June, 1),
		EndDate:     dayPtr(2023, time.December, 31),
		Description: strPtr("Dashboards in React"),
	}
	ongoing := &Entity{
		Position:  "Web Developer",
		Company:   "Enovatorz",
		StartDate: day(2024, time.January, 15),
	}
	require.NoError(t, repo.Create(ctx, closed))
	require.NoError(t, repo.Create(ctx, ongoing))

	got, err := repo.List(ctx)
	require.NoError(t, err)

	want := []*Entity{
		{ID: ongoing.ID, Position: "Web Developer", Company: "Enovatorz", StartDate: day(2024, time.January, 15)},
		{
			ID:          closed.ID,
			Position:    "Frontend Intern",
			Company:     "Acme Labs",
			StartDate:   day(2023, time.June, 1),
			EndDate:     dayPtr(2023, time.December, 31),
			Description: strPtr("Dashboards in React"),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("experiences mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got[0].Ongoing())
	assert.False(t, got[1].Ongoing())
}

func TestRepositoryListSortedByStartDateDescending(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	for _, in := range []*Entity{
		{Position: "A", Company: "X", StartDate: day(2019, time.September, 1)},
		{Position: "B", Company: "X", StartDate: day(2024, time.January, 1)},
		{Position: "C", Company: "X", StartDate: day(2021, time.October, 1), EndDate: dayPtr(2025, time.June, 30)},
		{Position: "D", Company: "X", StartDate: day(2024, time.January, 1)},
	} {
		require.NoError(t, repo.Create(ctx, in))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)

	positions := make([]string, 0, len(got))
	for _, e := range got {
		positions = append(positions, e.Position)
	}
	assert.Equal(t, []string{"B", "D", "C", "A"}, positions)

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].StartDate.Before(got[i].StartDate), "experiences out of order at %d", i)
	}
}

func TestRepositoryListIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	for _, p := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, &Entity{Position: p, Company: "X", StartDate: day(2022, time.May, 5)}))
	}

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated list differs (-first +second):\n%s", diff)
	}
}

func TestRepositoryCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	tests := []struct {
		name  string
		in    *Entity
		field string
	}{
		{name: "missing position", in: &Entity{Company: "X", StartDate: day(2020, 1, 1)}, field: "position"},
		{name: "blank company", in: &Entity{Position: "P", Company: "\t", StartDate: day(2020, 1, 1)}, field: "company"},
		{name: "missing start", in: &Entity{Position: "P", Company: "X"}, field: "startDate"},
		{name: "ends before start", in: &Entity{Position: "P", Company: "X", StartDate: day(2020, 1, 1), EndDate: dayPtr(2019, 1, 1)}, field: "endDate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.Create(ctx, tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidExperience))
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepositoryListStoreFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.List(context.Background())
	require.Error(t, err)
}

func TestRepositoryListSkipsInvalidStoredRows(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.Create(ctx, &Entity{Position: "Valid", Company: "Enovatorz", StartDate: day(2024, time.February, 1)}))

	// Rows written behind the repository's back: a tab-only company passes
	// SQLite's trim() CHECK, and the SQLite schema has no date range CHECK.
	_, err := db.ExecContext(ctx,
		`INSERT INTO experiences (id, position, company, start_date, end_date, description) VALUES (?, ?, ?, ?, ?, ?)`,
		"blank-company", "Developer", "\t", day(2023, time.January, 1), nil, nil)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO experiences (id, position, company, start_date, end_date, description) VALUES (?, ?, ?, ?, ?, ?)`,
		"reversed-range", "Developer", "Acme", day(2022, time.June, 1), day(2021, time.June, 1), nil)
	require.NoError(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Valid", got[0].Position)
}
