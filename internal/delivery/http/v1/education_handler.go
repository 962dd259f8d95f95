package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(public, protected *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	education := public.Group("/education")
	{
		education.GET("", handler.List)
		education.GET("/:id", handler.GetByID)
	}

	managed := protected.Group("/education")
	{
		managed.POST("", handler.Create)
		managed.PUT("/:id", handler.Update)
		managed.DELETE("/:id", handler.Delete)
		managed.POST("/seed", handler.Seed)
	}
}

type CreateEducationRequest struct {
	Title       string `json:"title" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Period      string `json:"period" binding:"required"`
}

type UpdateEducationRequest struct {
	Title       *string `json:"title"`
	Institution *string `json:"institution"`
	Period      *string `json:"period"`
}

// List godoc
// @Summary      List education entries
// @Tags         education
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /education [get]
func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.educationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education list", entries)
}

// GetByID godoc
// @Summary      Get an education entry by id
// @Tags         education
// @Produce      json
// @Param        id  path  string  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [get]
func (h *EducationHandler) GetByID(c *gin.Context) {
	entry, err := h.educationUC.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if entry == nil {
		c.Error(apperror.NotFound("Education not found"))
		return
	}

	response.Success(c, http.StatusOK, "Education found", entry)
}

// Create godoc
// @Summary      Create an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        education  body      CreateEducationRequest  true  "Education JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /education [post]
// @Security     BearerAuth
func (h *EducationHandler) Create(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	entry, err := h.educationUC.Create(c.Request.Context(), &domain.Education{
		Title:       req.Title,
		Institution: req.Institution,
		Period:      req.Period,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education created", entry)
}

// Update godoc
// @Summary      Update an education entry
// @Description  Partial update; absent fields are left unchanged
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        id         path      string                  true  "Education ID"
// @Param        education  body      UpdateEducationRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /education/{id} [put]
// @Security     BearerAuth
func (h *EducationHandler) Update(c *gin.Context) {
	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	entry, err := h.educationUC.Update(c.Request.Context(), c.Param("id"), domain.EducationUpdate{
		Title:       req.Title,
		Institution: req.Institution,
		Period:      req.Period,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", entry)
}

// Delete godoc
// @Summary      Delete an education entry
// @Tags         education
// @Param        id  path  string  true  "Education ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [delete]
// @Security     BearerAuth
func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.educationUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Seed godoc
// @Summary      Seed the default education entries
// @Tags         education
// @Produce      json
// @Success      201  {object}  response.Response
// @Router       /education/seed [post]
// @Security     BearerAuth
func (h *EducationHandler) Seed(c *gin.Context) {
	if err := h.educationUC.Seed(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	entries, err := h.educationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education seeded", entries)
}
