package certificate

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestMongoRepository_Integration requires a running MongoDB (skipped if MONGODB_URI is not set)
func TestMongoRepository_Integration(t *testing.T) {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		t.Skip("Skipping MongoDB integration test - MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	testDB := client.Database("portfolio_certificate_test")
	defer testDB.Drop(ctx)

	repo := NewMongoRepository(testDB)

	for _, c := range []*Entity{
		{Title: "Old", Issuer: "X", Date: day(2020, 1, 1)},
		{Title: "New", Issuer: "X", Date: day(2024, 1, 1)},
		{Title: "New too", Issuer: "X", Date: day(2024, 1, 1)},
	} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Failed to create certificate: %v", err)
		}
		if c.ID == "" {
			t.Fatal("expected ID to be assigned")
		}
	}

	// A document written around the schema is never served.
	if _, err := testDB.Collection(CollectionName).InsertOne(ctx, bson.M{"issuer": "X", "date": day(2025, 1, 1)}); err != nil {
		t.Fatalf("Failed to insert raw document: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list certificates: %v", err)
	}

	want := []string{"New", "New too", "Old"}
	if len(got) != len(want) {
		t.Fatalf("expected %d certificates, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}
