package controllers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/maulharun/ukm-terbaru123/dto"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
	"github.com/maulharun/ukm-terbaru123/internal/repository"
)

type AuthController struct {
	users    *repository.UserRepository
	secret   string
	validate *validator.Validate
}

func NewAuthController(users *repository.UserRepository, secret string) *AuthController {
	return &AuthController{users: users, secret: secret, validate: validator.New()}
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterRequest true "Account"
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /auth/register [post]
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
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

	existing, err := ctl.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return serviceError(c, err, "Terjadi kesalahan pada server")
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email sudah terdaftar",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return serviceError(c, err, "Terjadi kesalahan pada server")
	}

	role := in.Role
	if role == "" {
		role = models.RoleMahasiswa
	}

	now := time.Now()
	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hashed),
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ctl.users.Insert(ctx, user); err != nil {
		return serviceError(c, err, "Terjadi kesalahan pada server")
	}

	log.WithField("user", user.ID.Hex()).Info("account registered")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registrasi berhasil",
		"user":    user,
	})
}

// Login godoc
// @Summary      Log in and receive a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200  {object} map[string]interface{}
// @Failure      401  {object} map[string]string
// @Router       /auth/login [post]
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Body tidak valid",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := ctl.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return serviceError(c, err, "Login gagal")
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Email atau password salah",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Email atau password salah",
		})
	}

	ukmNames := make([]string, 0, len(user.UKM))
	for _, entry := range user.UKM {
		ukmNames = append(ukmNames, entry.Name)
	}

	claims := middleware.PortalClaims{
		UID:  user.ID.Hex(),
		Role: user.Role,
		UKM:  ukmNames,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ctl.secret))
	if err != nil {
		return serviceError(c, err, "Login gagal")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Strict",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login berhasil",
		"token":   token,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
			"ukm":   user.UKM,
		},
	})
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object} map[string]interface{}
// @Router       /auth/logout [post]
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout berhasil",
	})
}
