package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DokumentasiFile is one uploaded attachment, type-tagged so the UI can
// pick a renderer ("image", "video", "application").
type DokumentasiFile struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"public_id" json:"public_id"`
	Type     string `bson:"type" json:"type"`
	FileName string `bson:"fileName" json:"fileName"`
	FileSize int64  `bson:"fileSize" json:"fileSize"`
}

type Dokumentasi struct {
	ID          bson.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	UKM         string            `bson:"ukm" json:"ukm"`
	Title       string            `bson:"title" json:"title"`
	Description string            `bson:"description" json:"description"`
	Kegiatan    string            `bson:"kegiatan" json:"kegiatan"`
	Tahun       int               `bson:"tahun" json:"tahun"`
	Files       []DokumentasiFile `bson:"files" json:"files"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
