package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(public, protected *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	experiences := public.Group("/experiences")
	{
		experiences.GET("", handler.List)
		experiences.GET("/:id", handler.GetByID)
	}

	managed := protected.Group("/experiences")
	{
		managed.POST("", handler.Create)
		managed.PUT("/:id", handler.Update)
		managed.DELETE("/:id", handler.Delete)
		managed.POST("/seed", handler.Seed)
	}
}

type CreateExperienceRequest struct {
	Role        string `json:"role" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Period      string `json:"period" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateExperienceRequest struct {
	Role        *string `json:"role"`
	Company     *string `json:"company"`
	Period      *string `json:"period"`
	Description *string `json:"description"`
}

// List godoc
// @Summary      List experiences
// @Tags         experiences
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.experienceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience list", experiences)
}

// GetByID godoc
// @Summary      Get an experience by id
// @Tags         experiences
// @Produce      json
// @Param        id  path  string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [get]
func (h *ExperienceHandler) GetByID(c *gin.Context) {
	experience, err := h.experienceUC.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if experience == nil {
		c.Error(apperror.NotFound("Experience not found"))
		return
	}

	response.Success(c, http.StatusOK, "Experience found", experience)
}

// Create godoc
// @Summary      Create an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        experience  body      CreateExperienceRequest  true  "Experience JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	experience, err := h.experienceUC.Create(c.Request.Context(), &domain.Experience{
		Role:        req.Role,
		Company:     req.Company,
		Period:      req.Period,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience created", experience)
}

// Update godoc
// @Summary      Update an experience
// @Description  Partial update; absent fields are left unchanged
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id          path      string                   true  "Experience ID"
// @Param        experience  body      UpdateExperienceRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /experiences/{id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	experience, err := h.experienceUC.Update(c.Request.Context(), c.Param("id"), domain.ExperienceUpdate{
		Role:        req.Role,
		Company:     req.Company,
		Period:      req.Period,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", experience)
}

// Delete godoc
// @Summary      Delete an experience
// @Tags         experiences
// @Param        id  path  string  true  "Experience ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Seed godoc
// @Summary      Seed the default experiences
// @Tags         experiences
// @Produce      json
// @Success      201  {object}  response.Response
// @Router       /experiences/seed [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Seed(c *gin.Context) {
	if err := h.experienceUC.Seed(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	experiences, err := h.experienceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experiences seeded", experiences)
}
