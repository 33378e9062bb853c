package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotifType string

const (
	NotifSuccess NotifType = "success"
	NotifInfo    NotifType = "info"
	NotifWarning NotifType = "warning"
)

// UserDetails is the applicant snapshot carried on a ukm notification so
// pengurus can see who joined without another lookup.
type UserDetails struct {
	Nama     string `bson:"nama" json:"nama"`
	NIM      string `bson:"nim" json:"nim"`
	Fakultas string `bson:"fakultas" json:"fakultas"`
	Prodi    string `bson:"prodi" json:"prodi"`
}

// UserNotification lives in notif-user, addressed to a single user.
type UserNotification struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          string        `bson:"userId" json:"userId"`
	Title           string        `bson:"title" json:"title"`
	Message         string        `bson:"message" json:"message"`
	Type            NotifType     `bson:"type" json:"type"`
	IsRead          bool          `bson:"isRead" json:"isRead"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UKMName         string        `bson:"ukmName,omitempty" json:"ukmName,omitempty"`
	AlasanPenolakan string        `bson:"alasanPenolakan,omitempty" json:"alasanPenolakan,omitempty"`
}

// UKMNotification lives in notif-ukm, visible to every pengurus of the
// named ukm.
type UKMNotification struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UKMName     string        `bson:"ukmName" json:"ukmName"`
	Title       string        `bson:"title" json:"title"`
	Message     string        `bson:"message" json:"message"`
	Type        NotifType     `bson:"type" json:"type"`
	IsRead      bool          `bson:"isRead" json:"isRead"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UserID      string        `bson:"userId,omitempty" json:"userId,omitempty"`
	UserDetails *UserDetails  `bson:"userDetails,omitempty" json:"userDetails,omitempty"`
}
