package dto

// UpdateUserRequest is a partial profile edit; empty fields are left
// untouched so an approval racing a profile edit cannot be clobbered.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	NIM      string `json:"nim"`
	Fakultas string `json:"fakultas"`
	Prodi    string `json:"prodi"`
	PhotoURL string `json:"photoUrl"`
	PhotoID  string `json:"photoPublicId"`
}
