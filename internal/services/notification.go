package services

import (
	"fmt"
	"time"

	"github.com/maulharun/ukm-terbaru123/internal/models"
)

// Builders for the notifications fanned out by a registration decision.
// Message copy follows the portal's Indonesian wording.

func approvalUserNotification(reg *models.Registration, now time.Time) *models.UserNotification {
	return &models.UserNotification{
		UserID:    reg.UserID,
		Title:     fmt.Sprintf("Pendaftaran UKM %s", reg.UKMName),
		Message:   fmt.Sprintf("Selamat! Anda telah diterima di UKM %s", reg.UKMName),
		Type:      models.NotifSuccess,
		IsRead:    false,
		CreatedAt: now,
		UKMName:   reg.UKMName,
	}
}

func approvalUKMNotification(reg *models.Registration, now time.Time) *models.UKMNotification {
	return &models.UKMNotification{
		UKMName:   reg.UKMName,
		Title:     "Anggota Baru",
		Message:   fmt.Sprintf("%s (%s) telah bergabung dengan UKM %s", reg.Nama, reg.NIM, reg.UKMName),
		Type:      models.NotifInfo,
		IsRead:    false,
		CreatedAt: now,
		UserID:    reg.UserID,
		UserDetails: &models.UserDetails{
			Nama:     reg.Nama,
			NIM:      reg.NIM,
			Fakultas: reg.Fakultas,
			Prodi:    reg.Prodi,
		},
	}
}

func rejectionUserNotification(reg *models.Registration, alasanPenolakan string, now time.Time) *models.UserNotification {
	return &models.UserNotification{
		UserID:          reg.UserID,
		Title:           fmt.Sprintf("Pendaftaran UKM %s", reg.UKMName),
		Message:         fmt.Sprintf("Maaf, pendaftaran Anda di UKM %s ditolak. %s", reg.UKMName, alasanPenolakan),
		Type:            models.NotifWarning,
		IsRead:          false,
		CreatedAt:       now,
		UKMName:         reg.UKMName,
		AlasanPenolakan: alasanPenolakan,
	}
}
