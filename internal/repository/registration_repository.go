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

type RegistrationRepository struct {
	col *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{col: db.Collection("registrations")}
}

func (r *RegistrationRepository) FindAll(ctx context.Context) ([]models.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var regs []models.Registration
	if err := cur.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Registration, error) {
	var reg models.Registration
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) Insert(ctx context.Context, reg *models.Registration) error {
	reg.ID = bson.NewObjectID()
	_, err := r.col.InsertOne(ctx, reg)
	return err
}

// MarkDecided flips a pending registration to its terminal status. The
// filter includes status=pending so a decision that already landed makes
// this match nothing instead of overwriting it.
func (r *RegistrationRepository) MarkDecided(ctx context.Context, id bson.ObjectID, status, alasanPenolakan string, tanggalDiterima *time.Time) (bool, error) {
	set := bson.M{
		"status":          status,
		"alasanPenolakan": alasanPenolakan,
		"tanggalDiterima": tanggalDiterima,
		"updatedAt":       time.Now(),
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.RegistrationPending},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *RegistrationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}

func (r *RegistrationRepository) CountAll(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
