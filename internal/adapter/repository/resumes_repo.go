package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resume-pdf/internal/model"
)

// ResumesRepo reads and writes resume documents keyed by their name field.
type ResumesRepo struct {
	coll *mongo.Collection
}

func NewResumesRepo(client *mongo.Client, database, collection string) *ResumesRepo {
	return &ResumesRepo{coll: client.Database(database).Collection(collection)}
}

// FindByName returns the first document whose name equals name. A missing
// document is reported through the bool, not as an error.
func (r *ResumesRepo) FindByName(ctx context.Context, name string) (model.Record, bool, error) {
	var doc bson.D
	err := r.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Record{}, false, nil
	}
	if err != nil {
		return model.Record{}, false, fmt.Errorf("find resume %q: %w", name, err)
	}
	return model.FromDocument(doc), true, nil
}

// UpsertByName sets every present field of rec on the document named name,
// creating it when missing, and returns the stored result.
func (r *ResumesRepo) UpsertByName(ctx context.Context, name string, rec model.Record) (model.Record, error) {
	rec.Name = name
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc bson.D
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "$set", Value: rec.ToDocument()}},
		opts,
	).Decode(&doc)
	if err != nil {
		return model.Record{}, fmt.Errorf("upsert resume %q: %w", name, err)
	}
	return model.FromDocument(doc), nil
}
