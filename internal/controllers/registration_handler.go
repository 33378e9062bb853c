package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/dto"
	"github.com/maulharun/ukm-terbaru123/internal/repository"
	"github.com/maulharun/ukm-terbaru123/internal/services"
)

type RegistrationController struct {
	svc  *services.RegistrationService
	regs *repository.RegistrationRepository
}

func NewRegistrationController(svc *services.RegistrationService, regs *repository.RegistrationRepository) *RegistrationController {
	return &RegistrationController{svc: svc, regs: regs}
}

// List godoc
// @Summary      List all registrations
// @Description  Admin view of every registration with applicant snapshot, document URLs and decision metadata.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Failure      500  {object} map[string]string
// @Router       /registrations [get]
func (ctl *RegistrationController) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	regs, err := ctl.regs.FindAll(ctx)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data pendaftaran")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"registrations": regs,
	})
}

// Submit godoc
// @Summary      Submit a ukm registration
// @Description  Multipart submission: applicant fields plus ktmFile (required) and sertifikatFile (optional).
// @Tags         registrations
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Failure      404  {object} map[string]string
// @Failure      500  {object} map[string]string
// @Router       /registrations [post]
func (ctl *RegistrationController) Submit(c *fiber.Ctx) error {
	var in dto.SubmitRegistrationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Form tidak valid",
		})
	}

	ktm, err := c.FormFile("ktmFile")
	if err != nil {
		ktm = nil
	}
	sertifikat, err := c.FormFile("sertifikatFile")
	if err != nil {
		sertifikat = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := ctl.svc.Submit(ctx, in, ktm, sertifikat)
	if err != nil {
		return serviceError(c, err, "Gagal memproses pendaftaran")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Pendaftaran berhasil",
		"data":    result,
	})
}

// Decide godoc
// @Summary      Decide a pending registration
// @Description  Approves or rejects one pending registration; rejection requires alasanPenolakan.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.DecideRegistrationRequest true "Decision"
// @Success      200  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Failure      404  {object} map[string]string
// @Failure      409  {object} map[string]string
// @Failure      500  {object} map[string]string
// @Router       /registrations [put]
func (ctl *RegistrationController) Decide(c *fiber.Ctx) error {
	var in dto.DecideRegistrationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body tidak valid",
		})
	}
	if in.RegistrationID == "" || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "registrationId dan status wajib diisi",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctl.svc.Decide(ctx, in.RegistrationID, in.Status, in.AlasanPenolakan); err != nil {
		return serviceError(c, err, "Gagal memperbarui status pendaftaran")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Registration " + in.Status + " successfully",
	})
}
