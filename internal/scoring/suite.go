package scoring

import (
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// AlgorithmVersion stamps every composite result.
	AlgorithmVersion = "1.0.0-patent-pending"

	// DefaultOrganizationType applies when a caller passes none.
	DefaultOrganizationType = "higher-education"

	maxOverallRecommendations = 10
)

// Algorithm names one index, as used by the tier catalogue.
type Algorithm string

const (
	AlgorithmOCI  Algorithm = "OCI"
	AlgorithmHOCI Algorithm = "HOCI"
	AlgorithmJCI  Algorithm = "JCI"
	AlgorithmDSCH Algorithm = "DSCH"
	AlgorithmCRF  Algorithm = "CRF"
	AlgorithmLEI  Algorithm = "LEI"
)

// CompositeResult is the output of a full analysis. Indices the run did not
// produce (HOCI outside healthcare, or anything removed by Restrict) are nil.
type CompositeResult struct {
	AlgorithmVersion       string      `json:"algorithmVersion" bson:"algorithmVersion"`
	Timestamp              string      `json:"timestamp" bson:"timestamp"`
	OrganizationType       string      `json:"organizationType" bson:"organizationType"`
	OCI                    *OCIResult  `json:"oci" bson:"oci"`
	HOCI                   *HOCIResult `json:"hoci" bson:"hoci"`
	JCI                    *JCIResult  `json:"jci" bson:"jci"`
	DSCH                   *DSCHResult `json:"dsch" bson:"dsch"`
	CRF                    *CRFResult  `json:"crf" bson:"crf"`
	LEI                    *LEIResult  `json:"lei" bson:"lei"`
	CompositeScore         int         `json:"compositeScore" bson:"compositeScore"`
	OverallRecommendations []string    `json:"overallRecommendations" bson:"overallRecommendations"`
}

// Suite runs every index over one submission. It holds no mutable state and
// is safe for concurrent use.
type Suite struct {
	clock func() time.Time
}

// NewSuite creates a suite stamped by the wall clock.
func NewSuite() *Suite {
	return &Suite{clock: time.Now}
}

// NewSuiteWithClock creates a suite with a fixed time source.
func NewSuiteWithClock(clock func() time.Time) *Suite {
	return &Suite{clock: clock}
}

var defaultSuite = NewSuite()

// RunComprehensiveAnalysis runs the default suite.
func RunComprehensiveAnalysis(responses []AssessmentResponse, organizationType string) *CompositeResult {
	return defaultSuite.Run(responses, organizationType)
}

// IsHealthcare reports whether organizationType selects the HOCI index.
func IsHealthcare(organizationType string) bool {
	return strings.Contains(organizationType, "healthcare")
}

// Run computes all applicable indices, the composite score and the merged
// recommendation list.
func (s *Suite) Run(responses []AssessmentResponse, organizationType string) *CompositeResult {
	if organizationType == "" {
		organizationType = DefaultOrganizationType
	}

	var (
		oci  OCIResult
		hoci *HOCIResult
		jci  JCIResult
		dsch DSCHResult
		crf  CRFResult
		lei  LEIResult
	)

	// Indices share nothing but the read-only response slice.
	var g errgroup.Group
	g.Go(func() error { oci = CalculateOCI(responses, organizationType); return nil })
	if IsHealthcare(organizationType) {
		g.Go(func() error {
			r := CalculateHOCI(responses, organizationType)
			hoci = &r
			return nil
		})
	}
	g.Go(func() error { jci = CalculateJCI(responses); return nil })
	g.Go(func() error { dsch = CalculateDSCH(responses); return nil })
	g.Go(func() error { crf = CalculateCRF(responses); return nil })
	g.Go(func() error { lei = CalculateLEI(responses); return nil })
	_ = g.Wait()

	return &CompositeResult{
		AlgorithmVersion: AlgorithmVersion,
		Timestamp:        s.clock().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		OrganizationType: organizationType,
		OCI:              &oci,
		HOCI:             hoci,
		JCI:              &jci,
		DSCH:             &dsch,
		CRF:              &crf,
		LEI:              &lei,
		CompositeScore:   compositeScore(oci, jci, lei),
		OverallRecommendations: mergeRecommendations(
			oci.Recommendations,
			jci.Recommendations,
			dsch.Recommendations,
			crf.Recommendations,
			lei.Recommendations,
		),
	}
}

func compositeScore(oci OCIResult, jci JCIResult, lei LEIResult) int {
	sum := float64(float64(oci.Score) * 0.40)
	sum += float64(float64(jci.Score) * 0.35)
	sum += float64(lei.LeadershipScore * 0.25)
	return roundScore(sum)
}

// mergeRecommendations concatenates lists, keeps the first occurrence of each
// string and caps the result.
func mergeRecommendations(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range lists {
		for _, rec := range list {
			if seen[rec] {
				continue
			}
			seen[rec] = true
			out = append(out, rec)
			if len(out) == maxOverallRecommendations {
				return out
			}
		}
	}
	return out
}

// Restrict returns a copy keeping only the indices in allowed. The composite
// score and merged recommendations are left as computed.
func (r *CompositeResult) Restrict(allowed []Algorithm) *CompositeResult {
	keep := make(map[Algorithm]bool, len(allowed))
	for _, a := range allowed {
		keep[a] = true
	}

	out := *r
	if !keep[AlgorithmOCI] {
		out.OCI = nil
	}
	if !keep[AlgorithmHOCI] {
		out.HOCI = nil
	}
	if !keep[AlgorithmJCI] {
		out.JCI = nil
	}
	if !keep[AlgorithmDSCH] {
		out.DSCH = nil
	}
	if !keep[AlgorithmCRF] {
		out.CRF = nil
	}
	if !keep[AlgorithmLEI] {
		out.LEI = nil
	}
	return &out
}

// Algorithms lists the indices present in r.
func (r *CompositeResult) Algorithms() []Algorithm {
	var out []Algorithm
	if r.OCI != nil {
		out = append(out, AlgorithmOCI)
	}
	if r.HOCI != nil {
		out = append(out, AlgorithmHOCI)
	}
	if r.JCI != nil {
		out = append(out, AlgorithmJCI)
	}
	if r.DSCH != nil {
		out = append(out, AlgorithmDSCH)
	}
	if r.CRF != nil {
		out = append(out, AlgorithmCRF)
	}
	if r.LEI != nil {
		out = append(out, AlgorithmLEI)
	}
	return out
}
