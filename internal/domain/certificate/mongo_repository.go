package certificate

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the Mongo collection holding certificates.
const CollectionName = "certificates"

type document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Issuer      string             `bson:"issuer"`
	Date        time.Time          `bson:"date"`
	Description *string            `bson:"description,omitempty"`
}

func (d *document) entity() *Entity {
	return &Entity{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Issuer:      d.Issuer,
		Date:        d.Date.UTC(),
		Description: d.Description,
	}
}

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a certificate repository over a Mongo database
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection(CollectionName)}
}

func (r *mongoRepository) List(ctx context.Context) ([]*Entity, error) {
	// ObjectIDs grow with insertion time, so _id breaks date ties in insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode certificates: %w", err)
	}

	items := make([]*Entity, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].entity())
	}
	return keepValid(ctx, items), nil
}

func (r *mongoRepository) Create(ctx context.Context, c *Entity) error {
	if err := c.Validate(); err != nil {
		return err
	}

	doc := document{
		ID:          primitive.NewObjectID(),
		Title:       c.Title,
		Issuer:      c.Issuer,
		Date:        c.Date.UTC(),
		Description: c.Description,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	c.ID = doc.ID.Hex()
	c.Date = doc.Date
	return nil
}
