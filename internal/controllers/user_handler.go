package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/maulharun/ukm-terbaru123/dto"
	"github.com/maulharun/ukm-terbaru123/internal/models"
	"github.com/maulharun/ukm-terbaru123/internal/repository"
	"github.com/maulharun/ukm-terbaru123/internal/storage"
	"github.com/maulharun/ukm-terbaru123/utils"
)

type UserController struct {
	users    *repository.UserRepository
	kegiatan *repository.KegiatanRepository
	assets   storage.AssetStore
	validate *validator.Validate
}

func NewUserController(users *repository.UserRepository, kegiatan *repository.KegiatanRepository, assets storage.AssetStore) *UserController {
	return &UserController{users: users, kegiatan: kegiatan, assets: assets, validate: validator.New()}
}

// List godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Router       /users [get]
func (ctl *UserController) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users, err := ctl.users.FindAll(ctx)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data user")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}

// Get godoc
// @Summary      Get one user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /users/{id} [get]
func (ctl *UserController) Get(c *fiber.Ctx) error {
	oid, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Parameter ID tidak valid",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := ctl.users.FindByID(ctx, oid)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data user")
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User tidak ditemukan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// Update godoc
// @Summary      Update a user profile
// @Description  Partial update; only the provided fields are written so list appends from the approval workflow are never clobbered.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        body body dto.UpdateUserRequest true "Fields to update"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /users/{id} [put]
func (ctl *UserController) Update(c *fiber.Ctx) error {
	oid, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Parameter ID tidak valid",
		})
	}

	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body tidak valid",
		})
	}
	if err := ctl.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email tidak valid",
		})
	}

	set := bson.M{}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.Email != "" {
		set["email"] = in.Email
	}
	if in.NIM != "" {
		set["nim"] = in.NIM
	}
	if in.Fakultas != "" {
		set["fakultas"] = in.Fakultas
	}
	if in.Prodi != "" {
		set["prodi"] = in.Prodi
	}
	if in.PhotoURL != "" {
		set["photoUrl"] = in.PhotoURL
	}
	if in.PhotoID != "" {
		set["photoPublicId"] = in.PhotoID
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Tidak ada field yang diupdate",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Replacing the photo releases the old stored object.
	if in.PhotoID != "" {
		if old, err := ctl.users.FindByID(ctx, oid); err == nil && old != nil &&
			old.PhotoPublicID != "" && old.PhotoPublicID != in.PhotoID {
			if err := ctl.assets.Delete(ctx, old.PhotoPublicID); err != nil {
				// Orphaned object, not worth failing the edit over.
				serviceErrorLog(err, "failed to delete old profile photo")
			}
		}
	}

	matched, err := ctl.users.UpdateFields(ctx, oid, set)
	if err != nil {
		return serviceError(c, err, "Gagal mengupdate user")
	}
	if !matched {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User tidak ditemukan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Profil berhasil diupdate",
	})
}

// Delete godoc
// @Summary      Delete a user
// @Description  Admin action. Orphaned member entries in ukm documents are tolerated, matching the original behavior.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /users/{id} [delete]
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	oid, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Parameter ID tidak valid",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := ctl.users.FindByID(ctx, oid)
	if err != nil {
		return serviceError(c, err, "Gagal menghapus user")
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User tidak ditemukan",
		})
	}
	if user.PhotoPublicID != "" {
		if err := ctl.assets.Delete(ctx, user.PhotoPublicID); err != nil {
			serviceErrorLog(err, "failed to delete profile photo")
		}
	}

	if _, err := ctl.users.Delete(ctx, oid); err != nil {
		return serviceError(c, err, "Gagal menghapus user")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User berhasil dihapus",
	})
}

// Jadwal godoc
// @Summary      Upcoming schedule for a student's ukm
// @Description  Upcoming and ongoing kegiatan for the given comma-separated ukm names, grouped per ukm.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        ukm query string true "Comma-separated ukm names"
// @Success      200  {object} map[string]interface{}
// @Router       /users/jadwal [get]
func (ctl *UserController) Jadwal(c *fiber.Ctx) error {
	raw := c.Query("ukm")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UKM parameter is required",
		})
	}
	names := strings.Split(raw, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activities, err := ctl.kegiatan.FindUpcomingByUKMs(ctx, names)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil jadwal")
	}

	schedule := map[string][]models.Kegiatan{}
	for _, act := range activities {
		schedule[act.UKM] = append(schedule[act.UKM], act)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"schedule": schedule,
	})
}
