package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"orgassess/internal/cache"
	"orgassess/internal/metrics"
	"orgassess/internal/model"
	"orgassess/internal/repository"
	"orgassess/internal/scoring"
	"orgassess/internal/tier"
)

var (
	ErrUnknownTier  = errors.New("unknown pricing tier")
	ErrNoResponses  = errors.New("at least one response is required")
	ErrTierLimit    = errors.New("tier limit reached")
	ErrNotFound     = errors.New("assessment not found")
	ErrForbiddenOrg = errors.New("assessment belongs to another organization")
)

// MsgAnalysisCompleted is pushed to organization dashboards after scoring.
const MsgAnalysisCompleted = "analysis_completed"

const listLimit = 50

// AssessmentService scores submissions and stores the results
type AssessmentService struct {
	repo        repository.AssessmentRepo
	results     cache.ResultCache
	benchmarks  cache.BenchmarkCache
	suite       *scoring.Suite
	metrics     *metrics.Metrics
	broadcaster Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	repo repository.AssessmentRepo,
	results cache.ResultCache,
	benchmarks cache.BenchmarkCache,
	suite *scoring.Suite,
	m *metrics.Metrics,
) *AssessmentService {
	return &AssessmentService{
		repo:       repo,
		results:    results,
		benchmarks: benchmarks,
		suite:      suite,
		metrics:    m,
	}
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// TierError carries the guardrail message shown to the customer.
type TierError struct {
	Validation tier.Validation
}

func (e *TierError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTierLimit, e.Validation.Message)
}

func (e *TierError) Unwrap() error { return ErrTierLimit }

// Analyze runs the suite and trims it to the tier's entitlement without
// storing anything.
func (s *AssessmentService) Analyze(req model.SubmitAssessmentRequest) (*scoring.CompositeResult, error) {
	if !tier.IsKnown(req.Tier) {
		s.metrics.Rejected("unknown_tier")
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, req.Tier)
	}

	start := time.Now()
	result := s.suite.Run(req.Responses, req.OrganizationType)
	s.metrics.ObserveAnalysis(string(req.Tier), result.OrganizationType,
		scoring.IsHealthcare(result.OrganizationType), result.CompositeScore, time.Since(start))

	return result.Restrict(tier.AvailableAlgorithms(req.Tier)), nil
}

// Submit scores a submission for organizationID and stores it.
func (s *AssessmentService) Submit(ctx context.Context, organizationID, analystID string, req model.SubmitAssessmentRequest) (*model.Assessment, error) {
	if len(req.Responses) == 0 {
		s.metrics.Rejected("no_responses")
		return nil, ErrNoResponses
	}
	if !tier.IsKnown(req.Tier) {
		s.metrics.Rejected("unknown_tier")
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, req.Tier)
	}

	used, err := s.repo.CountByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("count assessments: %w", err)
	}
	if v := tier.ValidateAccess(req.Tier, tier.Usage{AssessmentsUsed: int(used) + 1}); !v.Valid {
		s.metrics.Rejected("tier_limit")
		return nil, &TierError{Validation: v}
	}

	result, err := s.Analyze(req)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		ID:               uuid.NewString(),
		OrganizationID:   organizationID,
		SubmittedBy:      analystID,
		Tier:             req.Tier,
		OrganizationType: result.OrganizationType,
		Responses:        req.Responses,
		Result:           result,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	// Cache and benchmark failures leave the stored assessment valid.
	if err := s.results.Set(ctx, assessment); err != nil {
		log.Printf("cache assessment %s: %v", assessment.ID, err)
	}
	if err := s.benchmarks.Record(ctx, assessment.OrganizationType, assessment.ID, result.CompositeScore); err != nil {
		log.Printf("record benchmark for %s: %v", assessment.ID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOrganization(organizationID, MsgAnalysisCompleted, assessment.Summary())
	}

	log.Printf("Assessment %s scored for org %s: composite=%d tier=%s", assessment.ID, organizationID, result.CompositeScore, req.Tier)
	return assessment, nil
}

// Get returns an assessment visible to organizationID, reading through the
// cache.
func (s *AssessmentService) Get(ctx context.Context, organizationID, id string) (*model.Assessment, error) {
	assessment, err := s.results.Get(ctx, id)
	if err != nil {
		log.Printf("read cached assessment %s: %v", id, err)
	}

	if assessment == nil {
		assessment, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if assessment == nil {
			return nil, ErrNotFound
		}
		if err := s.results.Set(ctx, assessment); err != nil {
			log.Printf("cache assessment %s: %v", id, err)
		}
	}

	if assessment.OrganizationID != organizationID {
		return nil, ErrForbiddenOrg
	}
	return assessment, nil
}

// List returns the most recent assessments of organizationID.
func (s *AssessmentService) List(ctx context.Context, organizationID string) ([]model.AssessmentSummary, error) {
	return s.repo.ListByOrganization(ctx, organizationID, listLimit)
}
