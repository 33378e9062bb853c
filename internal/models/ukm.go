package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UKMMember is one entry in a ukm's member list. Appended only by the
// approval workflow, never rewritten wholesale.
type UKMMember struct {
	UserID          string    `bson:"userId" json:"userId"`
	NIM             string    `bson:"nim" json:"nim"`
	Name            string    `bson:"name" json:"name"`
	Prodi           string    `bson:"prodi" json:"prodi"`
	Fakultas        string    `bson:"fakultas" json:"fakultas"`
	TanggalDiterima time.Time `bson:"tanggalDiterima" json:"tanggalDiterima"`
}

type UKM struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string        `bson:"name" json:"name"`
	Category    string        `bson:"category" json:"category"`
	Description string        `bson:"description" json:"description"`
	Members     []UKMMember   `bson:"members" json:"members"`
	CreatedAt   time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	CreatedBy   string        `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	UpdatedBy   string        `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}
