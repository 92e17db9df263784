package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/infra/media"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

type ProfessionalHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewProfessionalHandler(db *gorm.DB, uploader *media.Uploader) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProfessionalRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var pros []models.Professional
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&pros).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro := models.Professional{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Active:       true,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	c.JSON(http.StatusCreated, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&pro).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Renomear não reescreve snapshots em agendamentos antigos.
	if req.Name != nil {
		pro.Name = *req.Name
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao salvar profissional.")
		return
	}

	c.JSON(http.StatusOK, pro)
}

// UploadAvatar recebe multipart "avatar", converte para webp e guarda no S3.
func (h *ProfessionalHandler) UploadAvatar(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&pro).Error; err != nil {

		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Arquivo de imagem obrigatório.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadAvatar(c.Request.Context(), file)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
			return
		}
		httperr.Internal(c, "failed_to_upload_avatar", "Erro ao enviar imagem.")
		return
	}

	pro.AvatarURL = url
	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao salvar profissional.")
		return
	}

	c.JSON(http.StatusOK, pro)
}
