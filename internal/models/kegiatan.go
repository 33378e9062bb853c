package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	KegiatanUpcoming  = "upcoming"
	KegiatanOngoing   = "ongoing"
	KegiatanCompleted = "completed"
)

type Kegiatan struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UKM         string        `bson:"ukm" json:"ukm"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Date        time.Time     `bson:"date" json:"date"`
	Location    string        `bson:"location" json:"location"`
	Status      string        `bson:"status" json:"status"`
	Banner      string        `bson:"banner,omitempty" json:"banner,omitempty"`
	BannerID    string        `bson:"banner_id,omitempty" json:"banner_id,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
