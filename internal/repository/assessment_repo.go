package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"orgassess/internal/model"
)

// AssessmentRepo handles MongoDB operations for scored assessments
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	ListByOrganization(ctx context.Context, organizationID string, limit int64) ([]model.AssessmentSummary, error)
	CountByOrganization(ctx context.Context, organizationID string) (int64, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

// EnsureIndexes creates the indexes the assessment queries rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("assessments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "organizationId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "organizationType", Value: 1}}},
	})
	return err
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepo) ListByOrganization(ctx context.Context, organizationID string, limit int64) ([]model.AssessmentSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{
			"tier":             1,
			"organizationType": 1,
			"createdAt":        1,
			"compositeScore":   "$result.compositeScore",
		})

	cursor, err := r.collection.Find(ctx, bson.M{"organizationId": organizationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []model.AssessmentSummary{}
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *assessmentRepo) CountByOrganization(ctx context.Context, organizationID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"organizationId": organizationID})
}
