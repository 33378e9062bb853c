package dto

// SubmitRegistrationRequest carries the non-file fields of the multipart
// submission form. The ktmFile/sertifikatFile parts are handled separately.
type SubmitRegistrationRequest struct {
	UserID   string `form:"userId" json:"userId" validate:"required"`
	Nama     string `form:"nama" json:"nama" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	NIM      string `form:"nim" json:"nim" validate:"required"`
	Fakultas string `form:"fakultas" json:"fakultas" validate:"required"`
	Prodi    string `form:"prodi" json:"prodi" validate:"required"`
	UKMName  string `form:"ukmName" json:"ukmName" validate:"required"`
	Alasan   string `form:"alasan" json:"alasan" validate:"required"`
}

// DecideRegistrationRequest is the admin decision payload. AlasanPenolakan
// is mandatory when Status is "rejected".
type DecideRegistrationRequest struct {
	RegistrationID  string `json:"registrationId" validate:"required"`
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	AlasanPenolakan string `json:"alasanPenolakan"`
}
