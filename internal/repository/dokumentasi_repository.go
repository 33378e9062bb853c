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

type DokumentasiRepository struct {
	col *mongo.Collection
}

func NewDokumentasiRepository(db *mongo.Database) *DokumentasiRepository {
	return &DokumentasiRepository{col: db.Collection("dokumentasi")}
}

func (r *DokumentasiRepository) FindByUKM(ctx context.Context, ukm string) ([]models.Dokumentasi, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"ukm": ukm}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.Dokumentasi
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DokumentasiRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Dokumentasi, error) {
	var doc models.Dokumentasi
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DokumentasiRepository) Insert(ctx context.Context, doc *models.Dokumentasi) error {
	doc.ID = bson.NewObjectID()
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *DokumentasiRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (bool, error) {
	set["updatedAt"] = time.Now()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// AppendFiles adds uploaded attachments without rewriting the list.
func (r *DokumentasiRepository) AppendFiles(ctx context.Context, id bson.ObjectID, files []models.DokumentasiFile) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"files": bson.M{"$each": files}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *DokumentasiRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
