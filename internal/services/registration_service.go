package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/maulharun/ukm-terbaru123/dto"
	"github.com/maulharun/ukm-terbaru123/internal/models"
	"github.com/maulharun/ukm-terbaru123/internal/storage"
)

// RegistrationService owns the lifecycle of a ukm application: submission
// through approval/rejection, and the consistency of the collections a
// decision touches.
type RegistrationService struct {
	regs     RegistrationStore
	ukms     UKMStore
	users    UserStore
	notifs   NotificationStore
	assets   storage.AssetStore
	atomic   AtomicRunner
	validate *validator.Validate
}

func NewRegistrationService(
	regs RegistrationStore,
	ukms UKMStore,
	users UserStore,
	notifs NotificationStore,
	assets storage.AssetStore,
	atomic AtomicRunner,
) *RegistrationService {
	return &RegistrationService{
		regs:     regs,
		ukms:     ukms,
		users:    users,
		notifs:   notifs,
		assets:   assets,
		atomic:   atomic,
		validate: validator.New(),
	}
}

type SubmissionResult struct {
	RegistrationID string `json:"registrationId"`
	KTMURL         string `json:"ktmUrl"`
	SertifikatURL  string `json:"sertifikatUrl,omitempty"`
}

// Submit validates the application, uploads the documents and inserts a
// pending registration. Nothing is persisted when any required step
// fails; a failed secondary upload leaves the already-stored KTM object
// behind but never a partial registration document.
func (s *RegistrationService) Submit(ctx context.Context, in dto.SubmitRegistrationRequest, ktm, sertifikat *multipart.FileHeader) (*SubmissionResult, error) {
	if ktm == nil {
		return nil, validationf("ktmFile wajib diunggah")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, validationf("%v", err)
	}

	uid, err := bson.ObjectIDFromHex(in.UserID)
	if err != nil {
		return nil, validationf("userId tidak valid")
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundf("user tidak ditemukan")
	}

	// Duplicate guard: best-effort read-before-write against the user's
	// ukm list. Two truly concurrent submissions for the same pair can
	// still both pass; the source system behaves the same way.
	for _, entry := range user.UKM {
		if strings.EqualFold(entry.Name, in.UKMName) && entry.Status == "active" {
			return nil, validationf("Anda sudah terdaftar di UKM %s", in.UKMName)
		}
	}

	ukm, err := s.ukms.FindByName(ctx, in.UKMName)
	if err != nil {
		return nil, err
	}
	if ukm == nil {
		return nil, notFoundf("UKM %s tidak ditemukan", in.UKMName)
	}

	ktmUpload, err := s.assets.Upload(ctx, ktm, "registrations/ktm")
	if err != nil {
		return nil, err
	}

	var sertifikatRef *models.FileRef
	sertifikatURL := ""
	if sertifikat != nil {
		up, err := s.assets.Upload(ctx, sertifikat, "registrations/sertifikat")
		if err != nil {
			return nil, err
		}
		sertifikatRef = &models.FileRef{URL: up.URL, PublicID: up.PublicID}
		sertifikatURL = up.URL
	}

	now := time.Now()
	reg := &models.Registration{
		UserID:         in.UserID,
		Nama:           in.Nama,
		Email:          in.Email,
		NIM:            in.NIM,
		Fakultas:       in.Fakultas,
		Prodi:          in.Prodi,
		UKMName:        in.UKMName,
		Alasan:         in.Alasan,
		KTMFile:        models.FileRef{URL: ktmUpload.URL, PublicID: ktmUpload.PublicID},
		SertifikatFile: sertifikatRef,
		Status:         models.RegistrationPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.regs.Insert(ctx, reg); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"registration": reg.ID.Hex(),
		"user":         in.UserID,
		"ukm":          in.UKMName,
	}).Info("registration submitted")

	return &SubmissionResult{
		RegistrationID: reg.ID.Hex(),
		KTMURL:         ktmUpload.URL,
		SertifikatURL:  sertifikatURL,
	}, nil
}

// Decide runs the pending -> approved/rejected state machine as one
// atomic unit. On approval the member entry, the user's ukm entry and
// both notifications commit together with the status flip; if any step
// fails the registration stays pending so the decision can be retried.
func (s *RegistrationService) Decide(ctx context.Context, registrationID, status, alasanPenolakan string) error {
	if status != models.RegistrationApproved && status != models.RegistrationRejected {
		return validationf("status harus approved atau rejected")
	}
	if status == models.RegistrationRejected && strings.TrimSpace(alasanPenolakan) == "" {
		return validationf("alasan penolakan wajib diisi")
	}

	oid, err := bson.ObjectIDFromHex(registrationID)
	if err != nil {
		return validationf("registrationId tidak valid")
	}

	err = s.atomic.Run(ctx, func(tx context.Context) error {
		reg, err := s.regs.FindByID(tx, oid)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFoundf("pendaftaran tidak ditemukan")
		}
		if reg.Status != models.RegistrationPending {
			return ErrConflict
		}

		now := time.Now()
		var tanggalDiterima *time.Time
		if status == models.RegistrationApproved {
			tanggalDiterima = &now
		}

		matched, err := s.regs.MarkDecided(tx, oid, status, alasanPenolakan, tanggalDiterima)
		if err != nil {
			return err
		}
		if !matched {
			// Lost the pending precondition to a concurrent decision.
			return ErrConflict
		}

		if status == models.RegistrationRejected {
			return s.notifs.InsertUserNotification(tx, rejectionUserNotification(reg, alasanPenolakan, now))
		}

		ok, err := s.ukms.AppendMember(tx, reg.UKMName, models.UKMMember{
			UserID:          reg.UserID,
			NIM:             reg.NIM,
			Name:            reg.Nama,
			Prodi:           reg.Prodi,
			Fakultas:        reg.Fakultas,
			TanggalDiterima: now,
		})
		if err != nil {
			return err
		}
		if !ok {
			return notFoundf("UKM %s tidak ditemukan", reg.UKMName)
		}

		uid, err := bson.ObjectIDFromHex(reg.UserID)
		if err != nil {
			return validationf("userId pendaftaran tidak valid")
		}
		ok, err = s.users.AppendUKM(tx, uid, models.UserUKM{
			Name:      reg.UKMName,
			JoinDate:  now,
			NIM:       reg.NIM,
			Fakultas:  reg.Fakultas,
			Prodi:     reg.Prodi,
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		if !ok {
			return notFoundf("user pendaftar tidak ditemukan")
		}

		if err := s.notifs.InsertUserNotification(tx, approvalUserNotification(reg, now)); err != nil {
			return err
		}
		return s.notifs.InsertUKMNotification(tx, approvalUKMNotification(reg, now))
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"registration": registrationID,
		"decision":     status,
	}).Info("registration decided")
	return nil
}
