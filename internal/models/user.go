package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleMahasiswa = "mahasiswa"
	RolePengurus  = "pengurus"
	RoleAdmin     = "admin"
)

// UserUKM is one entry in a user's ukm list, appended when a
// registration is approved.
type UserUKM struct {
	Name      string    `bson:"name" json:"name"`
	JoinDate  time.Time `bson:"joinDate" json:"joinDate"`
	NIM       string    `bson:"nim" json:"nim"`
	Fakultas  string    `bson:"fakultas" json:"fakultas"`
	Prodi     string    `bson:"prodi" json:"prodi"`
	Status    string    `bson:"status" json:"status"` // "active"
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type User struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string        `bson:"name" json:"name"`
	Email         string        `bson:"email" json:"email"`
	Password      string        `bson:"password,omitempty" json:"-"`
	Role          string        `bson:"role" json:"role"`
	UKM           []UserUKM     `bson:"ukm,omitempty" json:"ukm,omitempty"`
	NIM           string        `bson:"nim,omitempty" json:"nim,omitempty"`
	Fakultas      string        `bson:"fakultas,omitempty" json:"fakultas,omitempty"`
	Prodi         string        `bson:"prodi,omitempty" json:"prodi,omitempty"`
	PhotoURL      string        `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	PhotoPublicID string        `bson:"photoPublicId,omitempty" json:"photoPublicId,omitempty"`
	Status        string        `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
