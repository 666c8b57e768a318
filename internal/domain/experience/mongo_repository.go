package experience

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the Mongo collection holding experiences.
const CollectionName = "experiences"

type document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Position    string             `bson:"position"`
	Company     string             `bson:"company"`
	StartDate   time.Time          `bson:"startDate"`
	EndDate     *time.Time         `bson:"endDate,omitempty"`
	Description *string            `bson:"description,omitempty"`
}

func (d *document) entity() *Entity {
	e := &Entity{
		ID:          d.ID.Hex(),
		Position:    d.Position,
		Company:     d.Company,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Description: d.Description,
	}
	e.normalize()
	return e
}

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates an experience repository over a Mongo database
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection(CollectionName)}
}

func (r *mongoRepository) List(ctx context.Context) ([]*Entity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}

	items := make([]*Entity, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].entity())
	}
	return keepValid(ctx, items), nil
}

func (r *mongoRepository) Create(ctx context.Context, exp *Entity) error {
	if err := exp.Validate(); err != nil {
		return err
	}
	exp.normalize()

	doc := document{
		ID:          primitive.NewObjectID(),
		Position:    exp.Position,
		Company:     exp.Company,
		StartDate:   exp.StartDate,
		EndDate:     exp.EndDate,
		Description: exp.Description,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create experience: %w", err)
	}

	exp.ID = doc.ID.Hex()
	return nil
}
