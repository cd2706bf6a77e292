package rowsave

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSaver is the document rendition of Save: the same populated-column
// extraction, inserted as one ordered document instead of one row.
type MongoSaver struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewMongoSaver(db *mongo.Database, collName string) *MongoSaver {
	return &MongoSaver{
		db:         db,
		collection: db.Collection(collName),
	}
}

func (m *MongoSaver) Save(ctx context.Context, value any) error {
	doc, err := BuildDocument(value)
	if err != nil {
		return err
	}

	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w. %s", ErrKeyAlreadyExists, err.Error())
		}

		return err
	}

	return nil
}

// BuildDocument produces the ordered document equivalent of an insert row.
func BuildDocument(value any) (bson.D, error) {
	def, err := TableDefOf(value)
	if err != nil {
		return nil, err
	}

	entries, err := insertFields(value)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w for collection %s", ErrNoColumns, def.Name)
	}

	doc := make(bson.D, 0, len(entries))
	for _, e := range entries {
		doc = append(doc, bson.E{Key: e.column, Value: e.value})
	}

	return doc, nil
}
