package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mongoBioRepository struct {
	collection *mongo.Collection
}

func NewBioRepository(database *mongo.Database) BioRepository {
	return &mongoBioRepository{
		collection: database.Collection("portfolio_bio"),
	}
}

func (r *mongoBioRepository) Get(ctx context.Context) (*PortfolioBio, error) {
	bio := &PortfolioBio{}
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: BioDocumentID}}).Decode(bio)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Synthetic default, never persisted by a read.
		return defaultBio(), nil
	}
	if err != nil {
		return nil, err
	}
	return bio, nil
}

func (r *mongoBioRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

func (r *mongoBioRepository) Upsert(ctx context.Context, bioText string, bioEnabled bool) (*PortfolioBio, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "bio_text", Value: bioText},
		{Key: "bio_enabled", Value: bioEnabled},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: BioDocumentID}},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	bio := &PortfolioBio{}
	if err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: BioDocumentID}}).Decode(bio); err != nil {
		return nil, err
	}
	return bio, nil
}
