package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberclubbr/barberclub-api/internal/config"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

// ======================================================
// AUTH DO CLIENTE ASSINANTE (por slug da barbearia)
// ======================================================

type ClientAuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewClientAuthHandler(db *gorm.DB, cfg *config.Config) *ClientAuthHandler {
	return &ClientAuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type ClientRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ClientLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *ClientAuthHandler) Register(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req ClientRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Client{}).
		Where("barbershop_id = ? AND email = ?", shop.ID, email).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar cadastro.")
		return
	}

	client := models.Client{
		BarbershopID: shop.ID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cadastro.")
		return
	}

	token, err := h.generateToken(&client)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client": gin.H{
			"id":            client.ID,
			"name":          client.Name,
			"email":         client.Email,
			"barbershop_id": client.BarbershopID,
		},
		"token": token,
	})
}

func (h *ClientAuthHandler) Login(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req ClientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var client models.Client
	if err := h.db.
		Where("barbershop_id = ? AND email = ?", shop.ID, email).
		First(&client).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.generateToken(&client)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client": gin.H{
			"id":             client.ID,
			"name":           client.Name,
			"email":          client.Email,
			"plan_name":      client.PlanName,
			"payment_status": client.PaymentStatus,
			"barbershop_id":  client.BarbershopID,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *ClientAuthHandler) generateToken(client *models.Client) (string, error) {
	claims := jwt.MapClaims{
		"sub":          client.ID,
		"barbershopId": client.BarbershopID,
		"role":         middleware.RoleClient,
		"exp":          time.Now().Add(24 * time.Hour).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
