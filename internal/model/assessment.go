package model

import (
	"time"

	"orgassess/internal/scoring"
	"orgassess/internal/tier"
)

// Assessment is one scored submission as stored in MongoDB.
type Assessment struct {
	ID               string                       `json:"id" bson:"_id"`
	OrganizationID   string                       `json:"organizationId" bson:"organizationId"`
	SubmittedBy      string                       `json:"submittedBy" bson:"submittedBy"`
	Tier             tier.PricingTier             `json:"tier" bson:"tier"`
	OrganizationType string                       `json:"organizationType" bson:"organizationType"`
	Responses        []scoring.AssessmentResponse `json:"responses" bson:"responses"`
	Result           *scoring.CompositeResult     `json:"result" bson:"result"`
	CreatedAt        time.Time                    `json:"createdAt" bson:"createdAt"`
}

// AssessmentSummary is the list view of an assessment.
type AssessmentSummary struct {
	ID               string           `json:"id" bson:"_id"`
	Tier             tier.PricingTier `json:"tier" bson:"tier"`
	OrganizationType string           `json:"organizationType" bson:"organizationType"`
	CompositeScore   int              `json:"compositeScore" bson:"compositeScore"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt"`
}

// Summary projects a to its list view.
func (a *Assessment) Summary() AssessmentSummary {
	s := AssessmentSummary{
		ID:               a.ID,
		Tier:             a.Tier,
		OrganizationType: a.OrganizationType,
		CreatedAt:        a.CreatedAt,
	}
	if a.Result != nil {
		s.CompositeScore = a.Result.CompositeScore
	}
	return s
}

// SubmitAssessmentRequest is the request body for scoring a submission.
type SubmitAssessmentRequest struct {
	Tier             tier.PricingTier             `json:"tier"`
	OrganizationType string                       `json:"organizationType"`
	Responses        []scoring.AssessmentResponse `json:"responses"`
}

// Benchmark places one composite score among its organization-type peers.
type Benchmark struct {
	AssessmentID     string  `json:"assessmentId"`
	OrganizationType string  `json:"organizationType"`
	CompositeScore   int     `json:"compositeScore"`
	Percentile       float64 `json:"percentile"` // share of peers scoring strictly lower, 0-100
	PeerCount        int64   `json:"peerCount"`
}
