package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go-portfolio-backend/internal/domain"
)

type dashboardUsecase struct {
	skillRepo       domain.SkillRepository
	certificateRepo domain.CertificateRepository
}

func NewDashboardUsecase(skillRepo domain.SkillRepository, certificateRepo domain.CertificateRepository) domain.DashboardUsecase {
	return &dashboardUsecase{skillRepo: skillRepo, certificateRepo: certificateRepo}
}

// groupCount counts occurrences per label, labels in first-seen order.
func groupCount(values []string) *domain.GroupCount {
	index := map[string]int{}
	result := &domain.GroupCount{Labels: []string{}, Counts: []int{}}
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			i = len(result.Labels)
			index[v] = i
			result.Labels = append(result.Labels, v)
			result.Counts = append(result.Counts, 0)
		}
		result.Counts[i]++
	}
	return result
}

func (u *dashboardUsecase) SkillsByCategory(ctx context.Context) (*domain.GroupCount, error) {
	skills, err := u.skillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(skills))
	for _, s := range skills {
		values = append(values, s.Category)
	}
	return groupCount(values), nil
}

func (u *dashboardUsecase) SkillsByLevel(ctx context.Context) (*domain.GroupCount, error) {
	skills, err := u.skillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(skills))
	for _, s := range skills {
		values = append(values, s.Level)
	}
	return groupCount(values), nil
}

// SkillsRadarData splits each category's count by level. Categories and
// levels are taken from the data in first-seen order.
func (u *dashboardUsecase) SkillsRadarData(ctx context.Context) (*domain.SkillsRadar, error) {
	skills, err := u.skillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	radar := &domain.SkillsRadar{Categories: []string{}, Levels: []string{}, Counts: [][]int{}}
	categoryIndex := map[string]int{}
	levelIndex := map[string]int{}

	for _, s := range skills {
		ci, ok := categoryIndex[s.Category]
		if !ok {
			ci = len(radar.Categories)
			categoryIndex[s.Category] = ci
			radar.Categories = append(radar.Categories, s.Category)
			radar.Counts = append(radar.Counts, make([]int, len(radar.Levels)))
		}
		li, ok := levelIndex[s.Level]
		if !ok {
			li = len(radar.Levels)
			levelIndex[s.Level] = li
			radar.Levels = append(radar.Levels, s.Level)
			for i := range radar.Counts {
				radar.Counts[i] = append(radar.Counts[i], 0)
			}
		}
		radar.Counts[ci][li]++
	}
	return radar, nil
}

func (u *dashboardUsecase) CertificatesByCategory(ctx context.Context) (*domain.GroupCount, error) {
	certificates, err := u.certificateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(certificates))
	for _, c := range certificates {
		values = append(values, c.Category)
	}
	return groupCount(values), nil
}

func (u *dashboardUsecase) CertificatesByPlatform(ctx context.Context) (*domain.GroupCount, error) {
	certificates, err := u.certificateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(certificates))
	for _, c := range certificates {
		values = append(values, c.Platform)
	}
	return groupCount(values), nil
}

// CertificatesTimeline buckets certificates into half-year periods derived
// from the data. Labels carry the bucket's starting month ("2025-01",
// "2025-07") and come back in chronological order; unparseable dates are
// skipped.
func (u *dashboardUsecase) CertificatesTimeline(ctx context.Context) (*domain.GroupCount, error) {
	certificates, err := u.certificateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string]int{}
	for _, c := range certificates {
		t, err := time.Parse("2006-01-02", c.Date)
		if err != nil {
			continue
		}
		month := 1
		if t.Month() >= time.July {
			month = 7
		}
		buckets[fmt.Sprintf("%04d-%02d", t.Year(), month)]++
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	counts := make([]int, 0, len(labels))
	for _, label := range labels {
		counts = append(counts, buckets[label])
	}
	return &domain.GroupCount{Labels: labels, Counts: counts}, nil
}

func (u *dashboardUsecase) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	skills, err := u.skillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	certificates, err := u.certificateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	levels := make([]string, 0, len(skills))
	categories := make([]string, 0, len(skills))
	for _, s := range skills {
		levels = append(levels, s.Level)
		categories = append(categories, s.Category)
	}
	certCategories := make([]string, 0, len(certificates))
	for _, c := range certificates {
		certCategories = append(certCategories, c.Category)
	}

	// Two most recent certificates; ISO dates sort lexicographically
	recent := make([]domain.Certificate, len(certificates))
	copy(recent, certificates)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	recentCerts := []domain.RecentCertificate{}
	for i := 0; i < len(recent) && i < 2; i++ {
		recentCerts = append(recentCerts, domain.RecentCertificate{Name: recent[i].Name, Date: recent[i].Date})
	}

	byCategory := groupCount(categories)
	topCategories := make([]domain.CategoryCount, 0, len(byCategory.Labels))
	for i, label := range byCategory.Labels {
		topCategories = append(topCategories, domain.CategoryCount{Name: label, Count: byCategory.Counts[i]})
	}
	sort.SliceStable(topCategories, func(i, j int) bool { return topCategories[i].Count > topCategories[j].Count })
	if len(topCategories) > 2 {
		topCategories = topCategories[:2]
	}

	return &domain.DashboardSummary{
		TotalSkills:            len(skills),
		TotalCertificates:      len(certificates),
		SkillsByLevel:          *groupCount(levels),
		CertificatesByCategory: *groupCount(certCategories),
		RecentCertificates:     recentCerts,
		TopSkillCategories:     topCategories,
	}, nil
}
