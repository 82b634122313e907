package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadworthy/pti-system/internal/core/domain"
	"github.com/roadworthy/pti-system/internal/core/ports"
)

const inspectionsCollection = "inspections"

// InspectionRepository implements ports.InspectionRepository using MongoDB.
type InspectionRepository struct {
	col *mongo.Collection
}

func NewInspectionRepository(db *mongo.Database) *InspectionRepository {
	return &InspectionRepository{col: db.Collection(inspectionsCollection)}
}

func (r *InspectionRepository) Insert(ctx context.Context, inspection *domain.Inspection) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, inspection); err != nil {
		return fmt.Errorf("insert inspection: %w", err)
	}
	return nil
}

func (r *InspectionRepository) FindByID(ctx context.Context, id string) (*domain.Inspection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inspection domain.Inspection
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&inspection); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInspectionNotFound
		}
		return nil, fmt.Errorf("find inspection: %w", err)
	}
	return &inspection, nil
}

func (r *InspectionRepository) FindAll(ctx context.Context) ([]*domain.Inspection, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *InspectionRepository) FindByPlates(ctx context.Context, plates []string) ([]*domain.Inspection, error) {
	return r.findMany(ctx, bson.M{"car_license_plate": bson.M{"$in": plates}})
}

// findMany returns matching documents in store order, capped at
// ports.MaxListResults.
func (r *InspectionRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Inspection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetLimit(ports.MaxListResults))
	if err != nil {
		return nil, fmt.Errorf("find inspections: %w", err)
	}
	defer cursor.Close(ctx)

	inspections := make([]*domain.Inspection, 0)
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, fmt.Errorf("decode inspections: %w", err)
	}
	return inspections, nil
}

// SetFields applies a partial update; fields absent from the map keep
// their stored values.
func (r *InspectionRepository) SetFields(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update inspection: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInspectionNotFound
	}
	return nil
}

func (r *InspectionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete inspection: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInspectionNotFound
	}
	return nil
}

// EnsureIndexes creates supporting indexes for the id and plate lookups.
func (r *InspectionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "car_license_plate", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
