package controllers

import (
	"context"
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

type KegiatanController struct {
	kegiatan *repository.KegiatanRepository
	assets   storage.AssetStore
	validate *validator.Validate
}

func NewKegiatanController(kegiatan *repository.KegiatanRepository, assets storage.AssetStore) *KegiatanController {
	return &KegiatanController{kegiatan: kegiatan, assets: assets, validate: validator.New()}
}

// List godoc
// @Summary      List a ukm's activities
// @Tags         kegiatan
// @Produce      json
// @Security     BearerAuth
// @Param        ukm query string true "UKM name"
// @Success      200  {object} map[string]interface{}
// @Router       /kegiatan [get]
func (ctl *KegiatanController) List(c *fiber.Ctx) error {
	ukm := c.Query("ukm")
	if ukm == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UKM parameter required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activities, err := ctl.kegiatan.FindByUKM(ctx, ukm)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data kegiatan")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"activities": activities,
	})
}

// Create godoc
// @Summary      Create an activity
// @Tags         kegiatan
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /kegiatan [post]
func (ctl *KegiatanController) Create(c *fiber.Ctx) error {
	var in dto.CreateKegiatanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Form tidak valid",
		})
	}
	if err := ctl.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Semua field harus diisi",
		})
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, in.Date); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Tanggal tidak valid",
			})
		}
	}

	status := in.Status
	if status == "" {
		status = models.KegiatanUpcoming
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	act := &models.Kegiatan{
		UKM:         in.UKM,
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Location:    in.Location,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	if banner, err := c.FormFile("banner"); err == nil && banner != nil {
		up, err := ctl.assets.Upload(ctx, banner, "kegiatan")
		if err != nil {
			return serviceError(c, err, "Gagal mengunggah banner")
		}
		act.Banner = up.URL
		act.BannerID = up.PublicID
	}

	if err := ctl.kegiatan.Insert(ctx, act); err != nil {
		return serviceError(c, err, "Gagal membuat kegiatan")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"activity": act,
	})
}

// Update godoc
// @Summary      Update an activity
// @Tags         kegiatan
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /kegiatan [put]
func (ctl *KegiatanController) Update(c *fiber.Ctx) error {
	var in dto.UpdateKegiatanRequest
	if err := c.BodyParser(&in); err != nil || in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Activity ID is required",
		})
	}

	oid, err := utils.Oid(in.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid activity ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	set := bson.M{}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.Location != "" {
		set["location"] = in.Location
	}
	if in.Status != "" {
		set["status"] = in.Status
	}
	if in.Date != "" {
		date, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			if date, err = time.Parse(time.RFC3339, in.Date); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": "Tanggal tidak valid",
				})
			}
		}
		set["date"] = date
	}

	if banner, ferr := c.FormFile("banner"); ferr == nil && banner != nil {
		old, err := ctl.kegiatan.FindByID(ctx, oid)
		if err != nil {
			return serviceError(c, err, "Gagal mengupdate kegiatan")
		}
		if old != nil && old.BannerID != "" {
			if err := ctl.assets.Delete(ctx, old.BannerID); err != nil {
				serviceErrorLog(err, "failed to delete old banner")
			}
		}
		up, err := ctl.assets.Upload(ctx, banner, "kegiatan")
		if err != nil {
			return serviceError(c, err, "Gagal mengunggah banner")
		}
		set["banner"] = up.URL
		set["banner_id"] = up.PublicID
	}

	matched, err := ctl.kegiatan.Update(ctx, oid, set)
	if err != nil {
		return serviceError(c, err, "Gagal mengupdate kegiatan")
	}
	if !matched {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Activity not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Activity updated successfully",
	})
}

// Delete godoc
// @Summary      Delete an activity
// @Tags         kegiatan
// @Produce      json
// @Security     BearerAuth
// @Param        id query string true "Activity ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /kegiatan [delete]
func (ctl *KegiatanController) Delete(c *fiber.Ctx) error {
	oid, err := utils.Oid(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid activity ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	act, err := ctl.kegiatan.FindByID(ctx, oid)
	if err != nil {
		return serviceError(c, err, "Gagal menghapus kegiatan")
	}
	if act == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Activity not found",
		})
	}

	if act.BannerID != "" {
		if err := ctl.assets.Delete(ctx, act.BannerID); err != nil {
			serviceErrorLog(err, "failed to delete banner")
		}
	}

	if _, err := ctl.kegiatan.Delete(ctx, oid); err != nil {
		return serviceError(c, err, "Gagal menghapus kegiatan")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Activity deleted successfully",
	})
}
