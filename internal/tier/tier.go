// Package tier holds the pricing tier catalogue: which indices each plan is
// entitled to, the assessment scope it buys and its usage guardrails.
// Legacy tiers stay in the catalogue so historical assessments still resolve.
package tier

import (
	"fmt"
	"math"

	"orgassess/internal/scoring"
)

// PricingTier identifies a commercial plan.
type PricingTier string

const (
	MonthlySubscription      PricingTier = "monthly-subscription"
	EnterpriseTransformation PricingTier = "enterprise-transformation"

	// Legacy tiers.
	OneTimeDiagnostic    PricingTier = "one-time-diagnostic"
	ComprehensivePackage PricingTier = "comprehensive-package"
	ExpressDiagnostic    PricingTier = "express-diagnostic"
)

// ActiveTiers are sold today, in upgrade order.
var ActiveTiers = []PricingTier{MonthlySubscription, EnterpriseTransformation}

// LegacyTiers are kept for stored records only.
var LegacyTiers = []PricingTier{OneTimeDiagnostic, ComprehensivePackage, ExpressDiagnostic}

var legacyReplacement = map[PricingTier]PricingTier{
	OneTimeDiagnostic:    MonthlySubscription,
	ComprehensivePackage: EnterpriseTransformation,
	ExpressDiagnostic:    MonthlySubscription,
}

// AssessmentScope is what a tier's assessment covers.
type AssessmentScope struct {
	QuestionCount   int                 `json:"questionCount"`
	Sections        []string            `json:"sections"`
	Algorithms      []scoring.Algorithm `json:"algorithms"`
	ReportPages     int                 `json:"reportPages"`
	FollowUpSupport string              `json:"followUpSupport"`
}

// Features are per-tier product switches.
type Features struct {
	UploadSupport             bool `json:"uploadSupport"`
	DashboardRefresh          bool `json:"dashboardRefresh"`
	CustomReporting           bool `json:"customReporting"`
	PowerBIEmbedded           bool `json:"powerBIEmbedded"`
	APIConnectors             bool `json:"apiConnectors"`
	OnSiteFacilitation        bool `json:"onSiteFacilitation"`
	ProgressAudits            bool `json:"progressAudits"`
	OrgChartGenerator         bool `json:"orgChartGenerator"`
	ScenarioBuilder           bool `json:"scenarioBuilder"`
	MonteCarloSimulation      bool `json:"monteCarloSimulation"`
	RealTimeCollaboration     bool `json:"realTimeCollaboration"`
	AIOpportunityAssessment   bool `json:"aiOpportunityAssessment"`
	AutomationRecommendations bool `json:"automationRecommendations"`
}

// Guardrails are usage limits. Zero means unlimited.
type Guardrails struct {
	MaxAssessments      int `json:"maxAssessments,omitempty"`
	MaxUsers            int `json:"maxUsers,omitempty"`
	MaxScenarios        int `json:"maxScenarios,omitempty"`
	DataRetentionMonths int `json:"dataRetentionMonths,omitempty"`
}

// Configuration describes one tier.
type Configuration struct {
	Name             string          `json:"name"`
	Price            int             `json:"price"`
	TargetCustomer   string          `json:"targetCustomer"`
	CoreDeliverables []string        `json:"coreDeliverables"`
	AssessmentScope  AssessmentScope `json:"assessmentScope"`
	Features         Features        `json:"features"`
	Guardrails       Guardrails      `json:"guardrails"`
}

var allIndices = []scoring.Algorithm{
	scoring.AlgorithmOCI, scoring.AlgorithmHOCI, scoring.AlgorithmJCI,
	scoring.AlgorithmDSCH, scoring.AlgorithmCRF, scoring.AlgorithmLEI,
}

var catalogue = map[PricingTier]Configuration{
	MonthlySubscription: {
		Name:           "Monthly Platform Access",
		Price:          149,
		TargetCustomer: "Teams iterating and tracking structural improvements over time.",
		CoreDeliverables: []string{
			"Unlimited diagnostic runs",
			"Trend & comparison dashboards",
			"Scenario & capacity modeling",
			"Org chart refresh & export",
			"Priority support",
		},
		AssessmentScope: AssessmentScope{
			QuestionCount: 120,
			Sections: []string{
				"Leadership & Strategy",
				"Operations & Processes",
				"Human Capital",
				"Technology & Infrastructure",
				"Change & Performance",
			},
			Algorithms:      allIndices[:5],
			ReportPages:     12,
			FollowUpSupport: "Priority email support",
		},
		Features: Features{
			UploadSupport:             true,
			DashboardRefresh:          true,
			OrgChartGenerator:         true,
			ScenarioBuilder:           true,
			RealTimeCollaboration:     true,
			AIOpportunityAssessment:   true,
			AutomationRecommendations: true,
		},
		Guardrails: Guardrails{MaxUsers: 25, MaxScenarios: 10, DataRetentionMonths: 12},
	},
	EnterpriseTransformation: {
		Name:           "Enterprise Realignment (Custom)",
		Price:          0,
		TargetCustomer: "Organizations pursuing guided transformation with facilitation & audits.",
		CoreDeliverables: []string{
			"Executive discovery & risk audit",
			"Full algorithm suite + benchmarking",
			"12-month transformation roadmap",
			"Scenario & savings workshops",
			"Quarterly progress audits",
			"On-demand strategist access",
		},
		AssessmentScope: AssessmentScope{
			QuestionCount: 160,
			Sections: []string{
				"Executive Leadership",
				"Strategic Planning",
				"Operations & Capacity",
				"Human Capital Strategy",
				"Technology & Infrastructure",
				"Change & Performance",
			},
			Algorithms:      allIndices,
			ReportPages:     30,
			FollowUpSupport: "Dedicated strategist + quarterly audits",
		},
		Features: Features{
			UploadSupport:             true,
			DashboardRefresh:          true,
			CustomReporting:           true,
			PowerBIEmbedded:           true,
			APIConnectors:             true,
			OnSiteFacilitation:        true,
			ProgressAudits:            true,
			OrgChartGenerator:         true,
			ScenarioBuilder:           true,
			RealTimeCollaboration:     true,
			AIOpportunityAssessment:   true,
			AutomationRecommendations: true,
		},
	},
	OneTimeDiagnostic:    legacyConfiguration("One-Time Diagnostic (Legacy)", 4995),
	ComprehensivePackage: legacyConfiguration("Comprehensive Package (Legacy)", 9900),
}

func legacyConfiguration(name string, price int) Configuration {
	return Configuration{
		Name:             name,
		Price:            price,
		TargetCustomer:   "Deprecated",
		CoreDeliverables: []string{},
		AssessmentScope: AssessmentScope{
			Sections:        []string{},
			Algorithms:      []scoring.Algorithm{},
			FollowUpSupport: "Deprecated",
		},
	}
}

// algorithmSet is the per-tier entitlement table. It is wider than the
// catalogue: express-diagnostic has algorithms but no configuration.
type algorithmSet struct {
	primary, advanced, experimental []scoring.Algorithm
}

var tierAlgorithms = map[PricingTier]algorithmSet{
	ExpressDiagnostic:        {primary: allIndices[:3]},
	MonthlySubscription:      {primary: allIndices[:5]},
	EnterpriseTransformation: {primary: allIndices},
	OneTimeDiagnostic:        {primary: allIndices[:3]},
	ComprehensivePackage:     {primary: allIndices[:5]},
}

// IsKnown reports whether t appears anywhere in the catalogue.
func IsKnown(t PricingTier) bool {
	_, ok := tierAlgorithms[t]
	return ok
}

// Lookup returns the tier's configuration.
func Lookup(t PricingTier) (Configuration, bool) {
	cfg, ok := catalogue[t]
	return cfg, ok
}

// AvailableAlgorithms lists the indices t is entitled to. Unknown tiers get
// none.
func AvailableAlgorithms(t PricingTier) []scoring.Algorithm {
	set, ok := tierAlgorithms[t]
	if !ok {
		return nil
	}
	out := make([]scoring.Algorithm, 0, len(set.primary)+len(set.advanced)+len(set.experimental))
	out = append(out, set.primary...)
	out = append(out, set.advanced...)
	return append(out, set.experimental...)
}

// Feature selects one switch from Features.
type Feature func(Features) bool

// HasFeature reports whether t has feature. Tiers without a configuration
// have no features.
func HasFeature(t PricingTier, feature Feature) bool {
	cfg, ok := catalogue[t]
	if !ok {
		return false
	}
	return feature(cfg.Features)
}

// OrgChartCapabilities summarises the org chart features of a tier.
type OrgChartCapabilities struct {
	CanGenerate       bool `json:"canGenerate"`
	CanModelScenarios bool `json:"canModelScenarios"`
	CanCollaborate    bool `json:"canCollaborate"`
	MaxScenarios      int  `json:"maxScenarios"`
}

// OrgChart returns t's org chart capabilities.
func OrgChart(t PricingTier) OrgChartCapabilities {
	cfg, ok := catalogue[t]
	if !ok {
		return OrgChartCapabilities{}
	}
	return OrgChartCapabilities{
		CanGenerate:       cfg.Features.OrgChartGenerator,
		CanModelScenarios: cfg.Features.ScenarioBuilder,
		CanCollaborate:    cfg.Features.RealTimeCollaboration,
		MaxScenarios:      cfg.Guardrails.MaxScenarios,
	}
}

// IsLegacy reports whether t is no longer sold.
func IsLegacy(t PricingTier) bool {
	for _, l := range LegacyTiers {
		if l == t {
			return true
		}
	}
	return false
}

// Normalized is the result of mapping a tier onto the active catalogue.
type Normalized struct {
	Tier           PricingTier `json:"tier"`
	NormalizedTier PricingTier `json:"normalizedTier"`
	IsLegacy       bool        `json:"isLegacy"`
	Original       PricingTier `json:"original,omitempty"`
}

// Normalize maps legacy tiers onto their active replacement.
func Normalize(t PricingTier) Normalized {
	if !IsLegacy(t) {
		return Normalized{Tier: t, NormalizedTier: t}
	}
	replacement, ok := legacyReplacement[t]
	if !ok {
		replacement = MonthlySubscription
	}
	return Normalized{Tier: t, NormalizedTier: replacement, IsLegacy: true, Original: t}
}

// DisplayLabel is the customer-facing name of t.
func DisplayLabel(t PricingTier) string {
	if IsLegacy(t) {
		return string(t) + " (Legacy)"
	}
	switch t {
	case MonthlySubscription:
		return "Monthly Platform Access"
	case EnterpriseTransformation:
		return "Enterprise Realignment"
	default:
		return string(t)
	}
}

// Rank orders tiers for upgrade gating. Anything outside the active list
// after normalization ranks 0.
func Rank(t PricingTier) int {
	normalized := Normalize(t).NormalizedTier
	for i, active := range ActiveTiers {
		if active == normalized {
			return i + 1
		}
	}
	return 0
}

// HasAccess reports whether userTier is at least requiredTier.
func HasAccess(userTier, requiredTier PricingTier) bool {
	return Rank(userTier) >= Rank(requiredTier)
}

// Usage is what a customer has consumed so far.
type Usage struct {
	AssessmentsUsed  int `json:"assessmentsUsed"`
	UsersCount       int `json:"usersCount"`
	ScenariosCreated int `json:"scenariosCreated"`
}

// Validation is the outcome of ValidateAccess.
type Validation struct {
	Valid           bool   `json:"valid"`
	Message         string `json:"message,omitempty"`
	UpgradeRequired bool   `json:"upgradeRequired,omitempty"`
}

// ValidateAccess checks usage against t's guardrails. Tiers without a
// configuration are allowed.
func ValidateAccess(t PricingTier, usage Usage) Validation {
	cfg, ok := catalogue[t]
	if !ok {
		return Validation{Valid: true}
	}
	g := cfg.Guardrails

	if g.MaxAssessments > 0 && usage.AssessmentsUsed > g.MaxAssessments {
		return limitReached("Assessment limit reached (%d). Upgrade to continue.", g.MaxAssessments)
	}
	if g.MaxUsers > 0 && usage.UsersCount > g.MaxUsers {
		return limitReached("User limit reached (%d). Upgrade to add more users.", g.MaxUsers)
	}
	if g.MaxScenarios > 0 && usage.ScenariosCreated >= g.MaxScenarios {
		return limitReached("Scenario limit reached (%d). Upgrade for unlimited scenarios.", g.MaxScenarios)
	}
	return Validation{Valid: true}
}

func limitReached(format string, limit int) Validation {
	return Validation{Message: fmt.Sprintf(format, limit), UpgradeRequired: true}
}

// IndustryModule is an organization-type specific question module.
type IndustryModule struct {
	Name                 string   `json:"name"`
	Sections             []string `json:"sections"`
	SpecializedQuestions int      `json:"specializedQuestions"`
}

// IndustryModules are keyed by organization type.
var IndustryModules = map[string]IndustryModule{
	"higher-education": {
		Name: "Higher Education",
		Sections: []string{
			"Academic Programs & Curriculum",
			"Faculty & Instructional Support",
			"Enrollment Management & Admissions",
			"Student Affairs & Success Services",
			"Continuing Education & Workforce Development",
		},
		SpecializedQuestions: 45,
	},
	"healthcare": {
		Name: "Healthcare",
		Sections: []string{
			"Clinical Operations & Patient Care",
			"Medical Staff & Provider Management",
			"Revenue Cycle & Patient Financial Services",
			"Quality & Patient Safety",
			"Regulatory Compliance & Accreditation",
		},
		SpecializedQuestions: 40,
	},
	"public-sector": {
		Name: "Public Sector",
		Sections: []string{
			"Public Service Delivery",
			"Regulatory & Compliance Functions",
			"Citizen Engagement & Communications",
			"Intergovernmental Relations",
			"Performance Measurement & Transparency",
		},
		SpecializedQuestions: 35,
	},
}

// IndustrySections returns the industry sections a tier's assessment
// includes for organizationType. A tier gets 30% of its question budget as
// industry questions, at most the module's specialised count, one section per
// ten questions.
func IndustrySections(organizationType string, t PricingTier) []string {
	module, ok := IndustryModules[organizationType]
	if !ok {
		return []string{}
	}
	cfg, ok := catalogue[t]
	if !ok {
		return []string{}
	}

	maxQuestions := math.Min(float64(module.SpecializedQuestions), float64(cfg.AssessmentScope.QuestionCount)*0.3)
	n := int(math.Ceil(maxQuestions / 10))
	if n > len(module.Sections) {
		n = len(module.Sections)
	}
	return module.Sections[:n]
}
