package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// FileRef points at an object in the asset store.
type FileRef struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"public_id" json:"public_id"`
}

// Registration is a student's application to join a UKM. The applicant
// fields are a snapshot taken at submission time; status only ever moves
// pending -> approved or pending -> rejected, after which the document
// is immutable.
type Registration struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          string        `bson:"userId" json:"userId"`
	Nama            string        `bson:"nama" json:"nama"`
	Email           string        `bson:"email" json:"email"`
	NIM             string        `bson:"nim" json:"nim"`
	Fakultas        string        `bson:"fakultas" json:"fakultas"`
	Prodi           string        `bson:"prodi" json:"prodi"`
	UKMName         string        `bson:"ukmName" json:"ukmName"`
	Alasan          string        `bson:"alasan" json:"alasan"`
	KTMFile         FileRef       `bson:"ktmFile" json:"ktmFile"`
	SertifikatFile  *FileRef      `bson:"sertifikatFile" json:"sertifikatFile"`
	Status          string        `bson:"status" json:"status"`
	AlasanPenolakan string        `bson:"alasanPenolakan,omitempty" json:"alasanPenolakan,omitempty"`
	TanggalDiterima *time.Time    `bson:"tanggalDiterima" json:"tanggalDiterima"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}
