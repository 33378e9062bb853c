package dto

type MarkReadRequest struct {
	NotificationID string `json:"notificationId" validate:"required"`
}
