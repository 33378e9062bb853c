package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique indexes the data model depends on:
// one account per email, one ukm per name. Registrations deliberately get
// no (userId, ukmName) unique index; the duplicate guard is a
// read-before-write check in the submission service.
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("ukm").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_ukm_name"),
		},
	)
	return err
}
