package eventRepo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"venuebook/database"
)

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo returns an EventRepository backed by the events collection.
func NewMongoEventRepo() EventRepository {
	return &mongoEventRepo{
		coll: database.MongoClient.Database(database.DatabaseName).Collection("events"),
	}
}
