package services

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced by the service layer. Controllers translate
// these into HTTP statuses; anything unwrapped is a server error.
var (
	ErrValidation = errors.New("validasi gagal")
	ErrNotFound   = errors.New("data tidak ditemukan")
	ErrConflict   = errors.New("pendaftaran sudah diproses")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
