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

type UKMRepository struct {
	col *mongo.Collection
}

func NewUKMRepository(db *mongo.Database) *UKMRepository {
	return &UKMRepository{col: db.Collection("ukm")}
}

func (r *UKMRepository) FindAll(ctx context.Context) ([]models.UKM, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ukms []models.UKM
	if err := cur.All(ctx, &ukms); err != nil {
		return nil, err
	}
	return ukms, nil
}

func (r *UKMRepository) FindByName(ctx context.Context, name string) (*models.UKM, error) {
	var ukm models.UKM
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&ukm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ukm, nil
}

// ExistsByName reports whether another ukm (excluding excludeID, pass the
// zero value to exclude nothing) already uses the name.
func (r *UKMRepository) ExistsByName(ctx context.Context, name string, excludeID bson.ObjectID) (bool, error) {
	filter := bson.M{"name": name}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UKMRepository) Insert(ctx context.Context, ukm *models.UKM) error {
	ukm.ID = bson.NewObjectID()
	_, err := r.col.InsertOne(ctx, ukm)
	return err
}

func (r *UKMRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (bool, error) {
	set["updatedAt"] = time.Now()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *UKMRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// AppendMember pushes one member entry, keyed by ukm name. Additive so a
// racing profile edit or admin update cannot be clobbered.
func (r *UKMRepository) AppendMember(ctx context.Context, name string, member models.UKMMember) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$push": bson.M{"members": member}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
