package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/maulharun/ukm-terbaru123/internal/models"
)

type KegiatanRepository struct {
	col *mongo.Collection
}

func NewKegiatanRepository(db *mongo.Database) *KegiatanRepository {
	return &KegiatanRepository{col: db.Collection("kegiatan")}
}

func (r *KegiatanRepository) FindByUKM(ctx context.Context, ukm string) ([]models.Kegiatan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"ukm": ukm}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var activities []models.Kegiatan
	if err := cur.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// FindUpcomingByUKMs feeds the student schedule view: only upcoming and
// ongoing activities for the ukm the student belongs to, soonest first.
func (r *KegiatanRepository) FindUpcomingByUKMs(ctx context.Context, ukms []string) ([]models.Kegiatan, error) {
	filter := bson.M{
		"ukm":    bson.M{"$in": ukms},
		"status": bson.M{"$in": bson.A{models.KegiatanUpcoming, models.KegiatanOngoing}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var activities []models.Kegiatan
	if err := cur.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *KegiatanRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Kegiatan, error) {
	var act models.Kegiatan
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&act)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (r *KegiatanRepository) Insert(ctx context.Context, act *models.Kegiatan) error {
	act.ID = bson.NewObjectID()
	_, err := r.col.InsertOne(ctx, act)
	return err
}

func (r *KegiatanRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (bool, error) {
	set["updatedAt"] = time.Now()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *KegiatanRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *KegiatanRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}

func (r *KegiatanRepository) CountAll(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
