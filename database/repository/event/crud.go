package eventRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"venuebook/models"
)

func (r *mongoEventRepo) Create(ctx context.Context, event models.VenueEvent) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

func (r *mongoEventRepo) GetByID(ctx context.Context, id string) (*models.VenueEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.VenueEvent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *mongoEventRepo) List(ctx context.Context) ([]models.VenueEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.VenueEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventRepo) Update(ctx context.Context, event models.VenueEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": event.ID}, event)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepo) ReplaceTiers(ctx context.Context, eventID string, tiers []models.PricingTier) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"pricingTiers": tiers, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": eventID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
