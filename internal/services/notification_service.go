package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NotificationService owns the read-flag toggle. Listing stays in the
// repositories; marking read is here so the not-found/idempotency rules
// live in one place. Anyone who knows a notification id may mark it read.
type NotificationService struct {
	notifs NotificationStore
}

func NewNotificationService(notifs NotificationStore) *NotificationService {
	return &NotificationService{notifs: notifs}
}

func (s *NotificationService) MarkUserNotificationRead(ctx context.Context, idHex string) error {
	return s.markRead(ctx, idHex, s.notifs.MarkUserRead)
}

func (s *NotificationService) MarkUKMNotificationRead(ctx context.Context, idHex string) error {
	return s.markRead(ctx, idHex, s.notifs.MarkUKMRead)
}

func (s *NotificationService) markRead(ctx context.Context, idHex string, mark func(context.Context, bson.ObjectID) (bool, error)) error {
	oid, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return validationf("notificationId tidak valid")
	}
	matched, err := mark(ctx, oid)
	if err != nil {
		return err
	}
	if !matched {
		return notFoundf("notifikasi tidak ditemukan")
	}
	// Marking an already-read notification matches but modifies nothing;
	// that still counts as success.
	return nil
}
