package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/maulharun/ukm-terbaru123/internal/models"
)

// Store interfaces the workflow engine writes through. The mongo-backed
// implementations live in internal/repository; tests substitute in-memory
// fakes.

type RegistrationStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Registration, error)
	Insert(ctx context.Context, reg *models.Registration) error
	// MarkDecided flips status away from pending with a filtered update
	// ({_id, status: "pending"}). Returns false when nothing matched,
	// i.e. the registration is gone or a concurrent decision won.
	MarkDecided(ctx context.Context, id bson.ObjectID, status, alasanPenolakan string, tanggalDiterima *time.Time) (bool, error)
}

type UKMStore interface {
	FindByName(ctx context.Context, name string) (*models.UKM, error)
	// AppendMember pushes one member entry onto the named ukm's list.
	// Targeted $push, never a whole-document replace.
	AppendMember(ctx context.Context, name string, member models.UKMMember) (bool, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	AppendUKM(ctx context.Context, id bson.ObjectID, entry models.UserUKM) (bool, error)
}

type NotificationStore interface {
	InsertUserNotification(ctx context.Context, n *models.UserNotification) error
	InsertUKMNotification(ctx context.Context, n *models.UKMNotification) error
	MarkUserRead(ctx context.Context, id bson.ObjectID) (bool, error)
	MarkUKMRead(ctx context.Context, id bson.ObjectID) (bool, error)
}
