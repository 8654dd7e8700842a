package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mongoProjectRepository struct {
	collection *mongo.Collection
	listLimit  int
}

func NewProjectRepository(database *mongo.Database, listLimit int) ProjectRepository {
	return &mongoProjectRepository{
		collection: database.Collection("projects"),
		listLimit:  listLimit,
	}
}

func (r *mongoProjectRepository) FindAll(ctx context.Context) ([]*Project, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetLimit(int64(r.listLimit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []*Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *mongoProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

func (r *mongoProjectRepository) Create(ctx context.Context, project *Project) error {
	now := time.Now().UTC()
	project.ID = bson.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Images == nil {
		project.Images = []string{}
	}

	_, err := r.collection.InsertOne(ctx, project)
	return err
}

func (r *mongoProjectRepository) Replace(ctx context.Context, id string, project *Project) (*Project, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: project.Title},
		{Key: "description", Value: project.Description},
		{Key: "year", Value: project.Year},
		{Key: "client", Value: project.Client},
		{Key: "location", Value: project.Location},
		{Key: "images", Value: project.Images},
		{Key: "plan_view", Value: project.PlanView},
		{Key: "has_plan_view", Value: project.HasPlanView},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: objectID}}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	updated := &Project{}
	if err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *mongoProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
