package dto

type CreateUKMRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateUKMRequest struct {
	ID          string `json:"_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
}
