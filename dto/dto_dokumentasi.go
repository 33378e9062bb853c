package dto

type CreateDokumentasiRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description"`
	Kegiatan    string `form:"kegiatan" json:"kegiatan"`
	Tahun       string `form:"tahun" json:"tahun"`
	UKM         string `form:"ukm" json:"ukm" validate:"required"`
}

type UpdateDokumentasiRequest struct {
	ID          string `form:"id" json:"id" validate:"required"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Kegiatan    string `form:"kegiatan" json:"kegiatan"`
	Tahun       string `form:"tahun" json:"tahun"`
}
