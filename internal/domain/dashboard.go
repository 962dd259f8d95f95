package domain

import "context"

// GroupCount pairs group labels with per-group counts, index-aligned.
type GroupCount struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// SkillsRadar is the per-category level breakdown for radar charts.
// Counts[i][j] is the number of skills in Categories[i] at Levels[j].
type SkillsRadar struct {
	Categories []string `json:"categories"`
	Levels     []string `json:"levels"`
	Counts     [][]int  `json:"counts"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RecentCertificate struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type DashboardSummary struct {
	TotalSkills            int                 `json:"total_skills"`
	TotalCertificates      int                 `json:"total_certificates"`
	SkillsByLevel          GroupCount          `json:"skills_by_level"`
	CertificatesByCategory GroupCount          `json:"certificates_by_category"`
	RecentCertificates     []RecentCertificate `json:"recent_certificates"`
	TopSkillCategories     []CategoryCount     `json:"top_skill_categories"`
}

// DashboardUsecase exposes read-only aggregations over the portfolio data.
type DashboardUsecase interface {
	SkillsByCategory(ctx context.Context) (*GroupCount, error)
	SkillsByLevel(ctx context.Context) (*GroupCount, error)
	SkillsRadarData(ctx context.Context) (*SkillsRadar, error)
	CertificatesByCategory(ctx context.Context) (*GroupCount, error)
	CertificatesByPlatform(ctx context.Context) (*GroupCount, error)
	CertificatesTimeline(ctx context.Context) (*GroupCount, error)
	Summary(ctx context.Context) (*DashboardSummary, error)
}
