package controllers

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/models"
	"github.com/maulharun/ukm-terbaru123/internal/repository"
)

// DashboardController serves the admin overview counters.
type DashboardController struct {
	regs     *repository.RegistrationRepository
	ukms     *repository.UKMRepository
	users    *repository.UserRepository
	kegiatan *repository.KegiatanRepository
}

func NewDashboardController(
	regs *repository.RegistrationRepository,
	ukms *repository.UKMRepository,
	users *repository.UserRepository,
	kegiatan *repository.KegiatanRepository,
) *DashboardController {
	return &DashboardController{regs: regs, ukms: ukms, users: users, kegiatan: kegiatan}
}

// Pendaftar godoc
// @Summary      Registration counts by status
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Router       /dashboard/pendaftar [get]
func (ctl *DashboardController) Pendaftar(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pending, err := ctl.regs.CountByStatus(ctx, models.RegistrationPending)
	if err != nil {
		return serviceError(c, err, "Failed to fetch registrations status")
	}
	approved, err := ctl.regs.CountByStatus(ctx, models.RegistrationApproved)
	if err != nil {
		return serviceError(c, err, "Failed to fetch registrations status")
	}
	rejected, err := ctl.regs.CountByStatus(ctx, models.RegistrationRejected)
	if err != nil {
		return serviceError(c, err, "Failed to fetch registrations status")
	}
	total, err := ctl.regs.CountAll(ctx)
	if err != nil {
		return serviceError(c, err, "Failed to fetch registrations status")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"total":    total,
		"pending":  pending,
		"approved": approved,
		"rejected": rejected,
	})
}

// UKM godoc
// @Summary      Per-ukm member counts
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Router       /dashboard/ukm [get]
func (ctl *DashboardController) UKM(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ukms, err := ctl.ukms.FindAll(ctx)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data UKM")
	}

	type ukmStat struct {
		Name        string `json:"name"`
		MemberCount int    `json:"memberCount"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}

	list := make([]ukmStat, 0, len(ukms))
	totalMembers := 0
	for _, ukm := range ukms {
		list = append(list, ukmStat{
			Name:        ukm.Name,
			MemberCount: len(ukm.Members),
			Description: ukm.Description,
			Category:    ukm.Category,
		})
		totalMembers += len(ukm.Members)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].MemberCount > list[j].MemberCount })

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"total":        len(ukms),
		"list":         list,
		"totalMembers": totalMembers,
	})
}

// Users godoc
// @Summary      Total user count
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Router       /dashboard/users [get]
func (ctl *DashboardController) Users(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := ctl.users.CountAll(ctx)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data user")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"total":   total,
	})
}

// Kegiatan godoc
// @Summary      Activity counts by status
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Router       /dashboard/kegiatan [get]
func (ctl *DashboardController) Kegiatan(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	upcoming, err := ctl.kegiatan.CountByStatus(ctx, models.KegiatanUpcoming)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data kegiatan")
	}
	ongoing, err := ctl.kegiatan.CountByStatus(ctx, models.KegiatanOngoing)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data kegiatan")
	}
	completed, err := ctl.kegiatan.CountByStatus(ctx, models.KegiatanCompleted)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data kegiatan")
	}
	total, err := ctl.kegiatan.CountAll(ctx)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data kegiatan")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"total":     total,
		"upcoming":  upcoming,
		"ongoing":   ongoing,
		"completed": completed,
	})
}
