package certificate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/portfolio/portfolio-api/internal/pkg/response"
)

type fakeRepository struct {
	items []*Entity
	err   error
	calls int
}

func (f *fakeRepository) List(ctx context.Context) ([]*Entity, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeRepository) Create(ctx context.Context, c *Entity) error {
	return errors.New("not supported")
}

func serve(t *testing.T, h *Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	root := chi.NewRouter()
	root.Mount("/api/certificates", h.Routes())

	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)
	return rr
}

func TestListReturnsArrayInRepositoryOrder(t *testing.T) {
	repo := &fakeRepository{items: []*Entity{
		{ID: "2", Title: "Newer", Issuer: "X", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "1", Title: "Older", Issuer: "Y", Date: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), Description: strPtr("d")},
	}}

	rr := serve(t, NewHandler(repo), http.MethodGet, "/api/certificates")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if repo.calls != 1 {
		t.Fatalf("expected exactly one store call, got %d", repo.calls)
	}

	var got []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0]["_id"] != "2" || got[0]["date"] != "2024-05-01T00:00:00Z" {
		t.Fatalf("unexpected first record %v", got[0])
	}
	if _, ok := got[0]["description"]; ok {
		t.Fatalf("absent description must be omitted, got %v", got[0])
	}
	if got[1]["description"] != "d" {
		t.Fatalf("unexpected second record %v", got[1])
	}
}

func TestListEmptyIsEmptyArray(t *testing.T) {
	rr := serve(t, NewHandler(&fakeRepository{}), http.MethodGet, "/api/certificates")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestListStoreErrorIsGenericServerError(t *testing.T) {
	rr := serve(t, NewHandler(&fakeRepository{err: errors.New("server selection timeout")}), http.MethodGet, "/api/certificates")

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if rr.Body.String() != response.ServerErrorBody {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}

	var arr []Entity
	if err := json.Unmarshal(rr.Body.Bytes(), &arr); err == nil {
		t.Fatal("500 body must not parse as a record array")
	}
}

func TestListUnreachableStore(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	rr := serve(t, NewHandler(repo), http.MethodGet, "/api/certificates")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

func TestListRejectsWrites(t *testing.T) {
	repo := &fakeRepository{}
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rr := serve(t, NewHandler(repo), method, "/api/certificates")
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected status 405, got %d", method, rr.Code)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("writes must not reach the store, got %d calls", repo.calls)
	}
}
