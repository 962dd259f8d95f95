package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/skills/by-category", handler.SkillsByCategory)
		dashboard.GET("/skills/by-level", handler.SkillsByLevel)
		dashboard.GET("/skills/radar-data", handler.SkillsRadarData)
		dashboard.GET("/certificates/by-category", handler.CertificatesByCategory)
		dashboard.GET("/certificates/by-platform", handler.CertificatesByPlatform)
		dashboard.GET("/certificates/timeline", handler.CertificatesTimeline)
		dashboard.GET("/summary", handler.Summary)
	}
}

// SkillsByCategory godoc
// @Summary      Skill counts grouped by category
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/skills/by-category [get]
// @Security     BearerAuth
func (h *DashboardHandler) SkillsByCategory(c *gin.Context) {
	counts, err := h.dashboardUC.SkillsByCategory(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills by category", counts)
}

// SkillsByLevel godoc
// @Summary      Skill counts grouped by level
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/skills/by-level [get]
// @Security     BearerAuth
func (h *DashboardHandler) SkillsByLevel(c *gin.Context) {
	counts, err := h.dashboardUC.SkillsByLevel(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills by level", counts)
}

// SkillsRadarData godoc
// @Summary      Per-category skill counts split by level
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/skills/radar-data [get]
// @Security     BearerAuth
func (h *DashboardHandler) SkillsRadarData(c *gin.Context) {
	radar, err := h.dashboardUC.SkillsRadarData(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills radar data", radar)
}

// CertificatesByCategory godoc
// @Summary      Certificate counts grouped by category
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/certificates/by-category [get]
// @Security     BearerAuth
func (h *DashboardHandler) CertificatesByCategory(c *gin.Context) {
	counts, err := h.dashboardUC.CertificatesByCategory(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificates by category", counts)
}

// CertificatesByPlatform godoc
// @Summary      Certificate counts grouped by platform
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/certificates/by-platform [get]
// @Security     BearerAuth
func (h *DashboardHandler) CertificatesByPlatform(c *gin.Context) {
	counts, err := h.dashboardUC.CertificatesByPlatform(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificates by platform", counts)
}

// CertificatesTimeline godoc
// @Summary      Certificate counts bucketed by half-year period
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/certificates/timeline [get]
// @Security     BearerAuth
func (h *DashboardHandler) CertificatesTimeline(c *gin.Context) {
	timeline, err := h.dashboardUC.CertificatesTimeline(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificates timeline", timeline)
}

// Summary godoc
// @Summary      Aggregated portfolio summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/summary [get]
// @Security     BearerAuth
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardUC.Summary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard summary", summary)
}
