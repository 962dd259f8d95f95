package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type LanguageHandler struct {
	languageUC domain.LanguageUsecase
}

func NewLanguageHandler(public, protected *gin.RouterGroup, languageUC domain.LanguageUsecase) {
	handler := &LanguageHandler{languageUC: languageUC}

	languages := public.Group("/languages")
	{
		languages.GET("", handler.List)
		languages.GET("/:id", handler.GetByID)
	}

	managed := protected.Group("/languages")
	{
		managed.POST("", handler.Create)
		managed.PUT("/:id", handler.Update)
		managed.DELETE("/:id", handler.Delete)
		managed.POST("/seed", handler.Seed)
	}
}

type CreateLanguageRequest struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level" binding:"required"`
}

type UpdateLanguageRequest struct {
	Name  *string `json:"name"`
	Level *string `json:"level"`
}

// List godoc
// @Summary      List languages
// @Tags         languages
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /languages [get]
func (h *LanguageHandler) List(c *gin.Context) {
	languages, err := h.languageUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Language list", languages)
}

// GetByID godoc
// @Summary      Get a language by id
// @Tags         languages
// @Produce      json
// @Param        id  path  string  true  "Language ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /languages/{id} [get]
func (h *LanguageHandler) GetByID(c *gin.Context) {
	language, err := h.languageUC.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if language == nil {
		c.Error(apperror.NotFound("Language not found"))
		return
	}

	response.Success(c, http.StatusOK, "Language found", language)
}

// Create godoc
// @Summary      Create a language
// @Tags         languages
// @Accept       json
// @Produce      json
// @Param        language  body      CreateLanguageRequest  true  "Language JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /languages [post]
// @Security     BearerAuth
func (h *LanguageHandler) Create(c *gin.Context) {
	var req CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	language, err := h.languageUC.Create(c.Request.Context(), &domain.Language{
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Language created", language)
}

// Update godoc
// @Summary      Update a language
// @Description  Partial update; absent fields are left unchanged
// @Tags         languages
// @Accept       json
// @Produce      json
// @Param        id        path      string                 true  "Language ID"
// @Param        language  body      UpdateLanguageRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /languages/{id} [put]
// @Security     BearerAuth
func (h *LanguageHandler) Update(c *gin.Context) {
	var req UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	language, err := h.languageUC.Update(c.Request.Context(), c.Param("id"), domain.LanguageUpdate{
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Language updated", language)
}

// Delete godoc
// @Summary      Delete a language
// @Tags         languages
// @Param        id  path  string  true  "Language ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /languages/{id} [delete]
// @Security     BearerAuth
func (h *LanguageHandler) Delete(c *gin.Context) {
	if err := h.languageUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Seed godoc
// @Summary      Seed the default languages
// @Tags         languages
// @Produce      json
// @Success      201  {object}  response.Response
// @Router       /languages/seed [post]
// @Security     BearerAuth
func (h *LanguageHandler) Seed(c *gin.Context) {
	if err := h.languageUC.Seed(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	languages, err := h.languageUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Languages seeded", languages)
}
