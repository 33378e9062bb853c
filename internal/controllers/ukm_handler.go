package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/maulharun/ukm-terbaru123/dto"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
	"github.com/maulharun/ukm-terbaru123/internal/repository"
	"github.com/maulharun/ukm-terbaru123/utils"
)

type UKMController struct {
	ukms     *repository.UKMRepository
	validate *validator.Validate
}

func NewUKMController(ukms *repository.UKMRepository) *UKMController {
	return &UKMController{ukms: ukms, validate: validator.New()}
}

// List godoc
// @Summary      List all ukm
// @Tags         ukm
// @Produce      json
// @Success      200  {object} map[string]interface{}
// @Router       /ukm [get]
func (ctl *UKMController) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ukms, err := ctl.ukms.FindAll(ctx)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data UKM")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"ukm":     ukms,
	})
}

// Create godoc
// @Summary      Create a ukm
// @Tags         ukm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateUKMRequest true "UKM"
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /ukm [post]
func (ctl *UKMController) Create(c *fiber.Ctx) error {
	var in dto.CreateUKMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body tidak valid",
		})
	}
	if err := ctl.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Semua field harus diisi",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := ctl.ukms.ExistsByName(ctx, in.Name, bson.ObjectID{})
	if err != nil {
		return serviceError(c, err, "Gagal menambahkan UKM")
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UKM dengan nama tersebut sudah ada",
		})
	}

	now := time.Now()
	ukm := &models.UKM{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Members:     []models.UKMMember{},
		CreatedAt:   now,
		CreatedBy:   middleware.UID(c),
		UpdatedAt:   now,
		UpdatedBy:   middleware.UID(c),
	}
	if err := ctl.ukms.Insert(ctx, ukm); err != nil {
		return serviceError(c, err, "Gagal menambahkan UKM")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "UKM berhasil ditambahkan",
		"data":    ukm,
	})
}

// Update godoc
// @Summary      Update a ukm
// @Tags         ukm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UpdateUKMRequest true "UKM"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /ukm [put]
func (ctl *UKMController) Update(c *fiber.Ctx) error {
	var in dto.UpdateUKMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body tidak valid",
		})
	}
	if err := ctl.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Semua field harus diisi",
		})
	}

	oid, err := utils.Oid(in.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ID tidak valid",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := ctl.ukms.ExistsByName(ctx, in.Name, oid)
	if err != nil {
		return serviceError(c, err, "Gagal mengupdate UKM")
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UKM dengan nama tersebut sudah ada",
		})
	}

	matched, err := ctl.ukms.Update(ctx, oid, bson.M{
		"name":        in.Name,
		"category":    in.Category,
		"description": in.Description,
		"updatedBy":   middleware.UID(c),
	})
	if err != nil {
		return serviceError(c, err, "Gagal mengupdate UKM")
	}
	if !matched {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "UKM tidak ditemukan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "UKM berhasil diupdate",
	})
}

// Delete godoc
// @Summary      Delete a ukm
// @Tags         ukm
// @Produce      json
// @Security     BearerAuth
// @Param        id query string true "UKM ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /ukm [delete]
func (ctl *UKMController) Delete(c *fiber.Ctx) error {
	oid, err := utils.Oid(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ID tidak valid",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := ctl.ukms.Delete(ctx, oid)
	if err != nil {
		return serviceError(c, err, "Gagal menghapus UKM")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "UKM tidak ditemukan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "UKM berhasil dihapus",
	})
}

// Members godoc
// @Summary      List a ukm's members
// @Description  Member list with optional text search and field filter, plus the distinct prodi/fakultas values for filter dropdowns.
// @Tags         ukm
// @Produce      json
// @Security     BearerAuth
// @Param        ukm query string true "UKM name"
// @Param        search query string false "Search text"
// @Param        filterBy query string false "prodi or fakultas"
// @Param        filterValue query string false "Filter value"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /ukm/members [get]
func (ctl *UKMController) Members(c *fiber.Ctx) error {
	name := c.Query("ukm")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UKM parameter is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ukm, err := ctl.ukms.FindByName(ctx, name)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data anggota")
	}
	if ukm == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "UKM tidak ditemukan",
		})
	}

	members := ukm.Members
	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := members[:0:0]
		for _, m := range members {
			if strings.Contains(strings.ToLower(m.Name), search) ||
				strings.Contains(strings.ToLower(m.NIM), search) ||
				strings.Contains(strings.ToLower(m.Prodi), search) ||
				strings.Contains(strings.ToLower(m.Fakultas), search) {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}
	if filterBy, filterValue := c.Query("filterBy"), strings.ToLower(c.Query("filterValue")); filterBy != "" && filterValue != "" {
		filtered := members[:0:0]
		for _, m := range members {
			field := ""
			switch filterBy {
			case "prodi":
				field = m.Prodi
			case "fakultas":
				field = m.Fakultas
			}
			if strings.Contains(strings.ToLower(field), filterValue) {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}

	prodiSet := map[string]bool{}
	fakultasSet := map[string]bool{}
	for _, m := range ukm.Members {
		prodiSet[m.Prodi] = true
		fakultasSet[m.Fakultas] = true
	}
	prodiOptions := make([]string, 0, len(prodiSet))
	for p := range prodiSet {
		prodiOptions = append(prodiOptions, p)
	}
	fakultasOptions := make([]string, 0, len(fakultasSet))
	for f := range fakultasSet {
		fakultasOptions = append(fakultasOptions, f)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"members": members,
		"filters": fiber.Map{
			"prodi":    prodiOptions,
			"fakultas": fakultasOptions,
		},
		"total": len(members),
	})
}
