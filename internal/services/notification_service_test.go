package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func TestMarkUserNotificationRead(t *testing.T) {
	store := newFakeStore()
	svc := NewNotificationService(store)

	n := &models.UserNotification{UserID: bson.NewObjectID().Hex(), Message: "halo"}
	require.NoError(t, store.InsertUserNotification(context.Background(), n))

	require.NoError(t, svc.MarkUserNotificationRead(context.Background(), n.ID.Hex()))
	assert.True(t, store.userNotifs[0].IsRead)

	// Marking again is a no-op, not an error.
	require.NoError(t, svc.MarkUserNotificationRead(context.Background(), n.ID.Hex()))
	assert.True(t, store.userNotifs[0].IsRead)
}

func TestMarkUKMNotificationRead(t *testing.T) {
	store := newFakeStore()
	svc := NewNotificationService(store)

	n := &models.UKMNotification{UKMName: "Robotics Club", Message: "anggota baru"}
	require.NoError(t, store.InsertUKMNotification(context.Background(), n))

	require.NoError(t, svc.MarkUKMNotificationRead(context.Background(), n.ID.Hex()))
	assert.True(t, store.ukmNotifs[0].IsRead)
}

func TestMarkReadInvalidID(t *testing.T) {
	svc := NewNotificationService(newFakeStore())

	err := svc.MarkUserNotificationRead(context.Background(), "not-a-hex")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	svc := NewNotificationService(newFakeStore())

	err := svc.MarkUserNotificationRead(context.Background(), bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.MarkUKMNotificationRead(context.Background(), bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}
