package storage

import (
	"context"
	"mime/multipart"
)

// UploadResult mirrors what the rest of the system persists for an
// uploaded object: a stable URL for display and the object id for
// later deletion.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// AssetStore is the binary-object collaborator. The workflow and CRUD
// services only ever talk to this interface, never to a concrete client.
type AssetStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
