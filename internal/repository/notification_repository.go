package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/maulharun/ukm-terbaru123/internal/models"
)

// NotificationRepository spans the two recipient-addressed collections:
// notif-user (per user) and notif-ukm (broadcast to a ukm's pengurus).
type NotificationRepository struct {
	userCol *mongo.Collection
	ukmCol  *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		userCol: db.Collection("notif-user"),
		ukmCol:  db.Collection("notif-ukm"),
	}
}

func (r *NotificationRepository) InsertUserNotification(ctx context.Context, n *models.UserNotification) error {
	n.ID = bson.NewObjectID()
	_, err := r.userCol.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepository) InsertUKMNotification(ctx context.Context, n *models.UKMNotification) error {
	n.ID = bson.NewObjectID()
	_, err := r.ukmCol.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]models.UserNotification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.userCol.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notifs []models.UserNotification
	if err := cur.All(ctx, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

func (r *NotificationRepository) ListByUKM(ctx context.Context, ukmName string) ([]models.UKMNotification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.ukmCol.Find(ctx, bson.M{"ukmName": ukmName}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notifs []models.UKMNotification
	if err := cur.All(ctx, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

// MarkUserRead sets isRead by id. Matching an already-read document is
// still a match; callers treat matched as success.
func (r *NotificationRepository) MarkUserRead(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.userCol.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *NotificationRepository) MarkUKMRead(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.ukmCol.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
