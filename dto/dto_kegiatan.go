package dto

// Kegiatan create/update arrive as multipart forms; the banner file part
// is handled by the controller.
type CreateKegiatanRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Date        string `form:"date" json:"date" validate:"required"`
	Location    string `form:"location" json:"location" validate:"required"`
	Status      string `form:"status" json:"status" validate:"omitempty,oneof=upcoming ongoing completed"`
	UKM         string `form:"ukm" json:"ukm" validate:"required"`
}

type UpdateKegiatanRequest struct {
	ID          string `form:"id" json:"id" validate:"required"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Date        string `form:"date" json:"date"`
	Location    string `form:"location" json:"location"`
	Status      string `form:"status" json:"status" validate:"omitempty,oneof=upcoming ongoing completed"`
}
