package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type CertificateHandler struct {
	certificateUC domain.CertificateUsecase
}

func NewCertificateHandler(public, protected *gin.RouterGroup, certificateUC domain.CertificateUsecase) {
	handler := &CertificateHandler{certificateUC: certificateUC}

	certificates := public.Group("/certificates")
	{
		certificates.GET("", handler.List)
		certificates.GET("/:id", handler.GetByID)
	}

	managed := protected.Group("/certificates")
	{
		managed.POST("", handler.Create)
		managed.PUT("/:id", handler.Update)
		managed.DELETE("/:id", handler.Delete)
		managed.POST("/seed", handler.Seed)
	}
}

type CreateCertificateRequest struct {
	Name     string `json:"name" binding:"required"`
	Platform string `json:"platform" binding:"required"`
	Date     string `json:"date" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Category string `json:"category" binding:"required"`
}

type UpdateCertificateRequest struct {
	Name     *string `json:"name"`
	Platform *string `json:"platform"`
	Date     *string `json:"date"`
	URL      *string `json:"url" binding:"omitempty,url"`
	Category *string `json:"category"`
}

// List godoc
// @Summary      List certificates
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /certificates [get]
func (h *CertificateHandler) List(c *gin.Context) {
	certificates, err := h.certificateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificate list", certificates)
}

// GetByID godoc
// @Summary      Get a certificate by id
// @Tags         certificates
// @Produce      json
// @Param        id  path  string  true  "Certificate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certificates/{id} [get]
func (h *CertificateHandler) GetByID(c *gin.Context) {
	certificate, err := h.certificateUC.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if certificate == nil {
		c.Error(apperror.NotFound("Certificate not found"))
		return
	}

	response.Success(c, http.StatusOK, "Certificate found", certificate)
}

// Create godoc
// @Summary      Create a certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        certificate  body      CreateCertificateRequest  true  "Certificate JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /certificates [post]
// @Security     BearerAuth
func (h *CertificateHandler) Create(c *gin.Context) {
	var req CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	certificate, err := h.certificateUC.Create(c.Request.Context(), &domain.Certificate{
		Name:     req.Name,
		Platform: req.Platform,
		Date:     req.Date,
		URL:      req.URL,
		Category: req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Certificate created", certificate)
}

// Update godoc
// @Summary      Update a certificate
// @Description  Partial update; absent fields are left unchanged
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        id           path      string                    true  "Certificate ID"
// @Param        certificate  body      UpdateCertificateRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /certificates/{id} [put]
// @Security     BearerAuth
func (h *CertificateHandler) Update(c *gin.Context) {
	var req UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	certificate, err := h.certificateUC.Update(c.Request.Context(), c.Param("id"), domain.CertificateUpdate{
		Name:     req.Name,
		Platform: req.Platform,
		Date:     req.Date,
		URL:      req.URL,
		Category: req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificate updated", certificate)
}

// Delete godoc
// @Summary      Delete a certificate
// @Tags         certificates
// @Param        id  path  string  true  "Certificate ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /certificates/{id} [delete]
// @Security     BearerAuth
func (h *CertificateHandler) Delete(c *gin.Context) {
	if err := h.certificateUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Seed godoc
// @Summary      Seed the default certificates
// @Tags         certificates
// @Produce      json
// @Success      201  {object}  response.Response
// @Router       /certificates/seed [post]
// @Security     BearerAuth
func (h *CertificateHandler) Seed(c *gin.Context) {
	if err := h.certificateUC.Seed(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	certificates, err := h.certificateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Certificates seeded", certificates)
}
