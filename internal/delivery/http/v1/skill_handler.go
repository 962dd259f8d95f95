package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := public.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/:id", handler.GetByID)
	}

	managed := protected.Group("/skills")
	{
		managed.POST("", handler.Create)
		managed.PUT("/:id", handler.Update)
		managed.DELETE("/:id", handler.Delete)
		managed.POST("/seed", handler.Seed)
	}
}

type CreateSkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Level    string `json:"level" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name"`
	Level    *string `json:"level"`
	Category *string `json:"category"`
}

// List godoc
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", skills)
}

// GetByID godoc
// @Summary      Get a skill by id
// @Tags         skills
// @Produce      json
// @Param        id  path  string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
func (h *SkillHandler) GetByID(c *gin.Context) {
	skill, err := h.skillUC.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if skill == nil {
		c.Error(apperror.NotFound("Skill not found"))
		return
	}

	response.Success(c, http.StatusOK, "Skill found", skill)
}

// Create godoc
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body      CreateSkillRequest  true  "Skill JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), &domain.Skill{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", skill)
}

// Update godoc
// @Summary      Update a skill
// @Description  Partial update; absent fields are left unchanged
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Skill ID"
// @Param        skill  body      UpdateSkillRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), c.Param("id"), domain.SkillUpdate{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Param        id  path  string  true  "Skill ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Seed godoc
// @Summary      Seed the default skill set
// @Description  Inserts the default skills, skipping names that already exist
// @Tags         skills
// @Produce      json
// @Success      201  {object}  response.Response
// @Router       /skills/seed [post]
// @Security     BearerAuth
func (h *SkillHandler) Seed(c *gin.Context) {
	if err := h.skillUC.Seed(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skills seeded", skills)
}
