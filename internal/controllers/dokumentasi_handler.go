package controllers

import (
	"context"
	"mime/multipart"
	"strconv"
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

type DokumentasiController struct {
	docs     *repository.DokumentasiRepository
	assets   storage.AssetStore
	validate *validator.Validate
}

func NewDokumentasiController(docs *repository.DokumentasiRepository, assets storage.AssetStore) *DokumentasiController {
	return &DokumentasiController{docs: docs, assets: assets, validate: validator.New()}
}

// List godoc
// @Summary      List a ukm's documentation records
// @Tags         dokumentasi
// @Produce      json
// @Security     BearerAuth
// @Param        ukm query string true "UKM name"
// @Success      200  {object} map[string]interface{}
// @Router       /dokumentasi [get]
func (ctl *DokumentasiController) List(c *fiber.Ctx) error {
	ukm := c.Query("ukm")
	if ukm == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UKM parameter required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs, err := ctl.docs.FindByUKM(ctx, ukm)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil data dokumentasi")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"documents": docs,
	})
}

// Create godoc
// @Summary      Create a documentation record with attachments
// @Tags         dokumentasi
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /dokumentasi [post]
func (ctl *DokumentasiController) Create(c *fiber.Ctx) error {
	var in dto.CreateDokumentasiRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Form tidak valid",
		})
	}
	if err := ctl.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields",
		})
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["files"]) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	uploaded, err := ctl.uploadFiles(ctx, form.File["files"])
	if err != nil {
		return serviceError(c, err, "Gagal mengunggah file")
	}

	tahun, _ := strconv.Atoi(in.Tahun)
	now := time.Now()
	doc := &models.Dokumentasi{
		UKM:         in.UKM,
		Title:       in.Title,
		Description: in.Description,
		Kegiatan:    in.Kegiatan,
		Tahun:       tahun,
		Files:       uploaded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ctl.docs.Insert(ctx, doc); err != nil {
		return serviceError(c, err, "Gagal menyimpan dokumentasi")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"document": doc,
	})
}

// Update godoc
// @Summary      Update a documentation record
// @Description  Edits the metadata fields and appends any newly uploaded files.
// @Tags         dokumentasi
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /dokumentasi [put]
func (ctl *DokumentasiController) Update(c *fiber.Ctx) error {
	var in dto.UpdateDokumentasiRequest
	if err := c.BodyParser(&in); err != nil || in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Document ID is required",
		})
	}

	oid, err := utils.Oid(in.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid document ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	set := bson.M{}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.Kegiatan != "" {
		set["kegiatan"] = in.Kegiatan
	}
	if in.Tahun != "" {
		if tahun, err := strconv.Atoi(in.Tahun); err == nil {
			set["tahun"] = tahun
		}
	}

	if len(set) > 0 {
		matched, err := ctl.docs.Update(ctx, oid, set)
		if err != nil {
			return serviceError(c, err, "Gagal mengupdate dokumentasi")
		}
		if !matched {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Document not found",
			})
		}
	}

	if form, err := c.MultipartForm(); err == nil && form != nil && len(form.File["files"]) > 0 {
		uploaded, err := ctl.uploadFiles(ctx, form.File["files"])
		if err != nil {
			return serviceError(c, err, "Gagal mengunggah file")
		}
		matched, err := ctl.docs.AppendFiles(ctx, oid, uploaded)
		if err != nil {
			return serviceError(c, err, "Gagal mengupdate dokumentasi")
		}
		if !matched {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Document not found",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Document updated successfully",
	})
}

// Delete godoc
// @Summary      Delete a documentation record and its stored files
// @Tags         dokumentasi
// @Produce      json
// @Security     BearerAuth
// @Param        id query string true "Document ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /dokumentasi [delete]
func (ctl *DokumentasiController) Delete(c *fiber.Ctx) error {
	oid, err := utils.Oid(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid document ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	doc, err := ctl.docs.FindByID(ctx, oid)
	if err != nil {
		return serviceError(c, err, "Gagal menghapus dokumentasi")
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Document not found",
		})
	}

	for _, file := range doc.Files {
		if file.PublicID == "" {
			continue
		}
		if err := ctl.assets.Delete(ctx, file.PublicID); err != nil {
			serviceErrorLog(err, "failed to delete documentation file")
		}
	}

	if _, err := ctl.docs.Delete(ctx, oid); err != nil {
		return serviceError(c, err, "Gagal menghapus dokumentasi")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Document deleted successfully",
	})
}

func (ctl *DokumentasiController) uploadFiles(ctx context.Context, files []*multipart.FileHeader) ([]models.DokumentasiFile, error) {
	uploaded := make([]models.DokumentasiFile, 0, len(files))
	for _, file := range files {
		up, err := ctl.assets.Upload(ctx, file, "dokumentasi")
		if err != nil {
			return nil, err
		}
		contentType := file.Header.Get("Content-Type")
		kind := "application"
		if i := strings.Index(contentType, "/"); i > 0 {
			kind = contentType[:i]
		}
		uploaded = append(uploaded, models.DokumentasiFile{
			URL:      up.URL,
			PublicID: up.PublicID,
			Type:     kind,
			FileName: file.Filename,
			FileSize: file.Size,
		})
	}
	return uploaded, nil
}
