package service

import (
	"context"
	"math"

	"orgassess/internal/cache"
	"orgassess/internal/model"
)

// ReportService builds report views over stored assessments
type ReportService struct {
	assessments *AssessmentService
	benchmarks  cache.BenchmarkCache
}

// NewReportService creates a new report service
func NewReportService(assessments *AssessmentService, benchmarks cache.BenchmarkCache) *ReportService {
	return &ReportService{
		assessments: assessments,
		benchmarks:  benchmarks,
	}
}

// Benchmark places an assessment's composite score among every stored
// assessment of the same organization type.
func (s *ReportService) Benchmark(ctx context.Context, organizationID, assessmentID string) (*model.Benchmark, error) {
	assessment, err := s.assessments.Get(ctx, organizationID, assessmentID)
	if err != nil {
		return nil, err
	}

	score := 0
	if assessment.Result != nil {
		score = assessment.Result.CompositeScore
	}

	below, total, err := s.benchmarks.Rank(ctx, assessment.OrganizationType, score)
	if err != nil {
		return nil, err
	}

	return &model.Benchmark{
		AssessmentID:     assessment.ID,
		OrganizationType: assessment.OrganizationType,
		CompositeScore:   score,
		Percentile:       percentile(below, total),
		PeerCount:        total,
	}, nil
}

func percentile(below, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(below)/float64(total)*1000) / 10
}
