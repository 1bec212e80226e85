package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgassess/internal/scoring"
)

func TestAvailableAlgorithms(t *testing.T) {
	assert.Equal(t, []scoring.Algorithm{"OCI", "HOCI", "JCI", "DSCH", "CRF"}, AvailableAlgorithms(MonthlySubscription))
	assert.Equal(t, []scoring.Algorithm{"OCI", "HOCI", "JCI", "DSCH", "CRF", "LEI"}, AvailableAlgorithms(EnterpriseTransformation))
	assert.Equal(t, []scoring.Algorithm{"OCI", "HOCI", "JCI"}, AvailableAlgorithms(ExpressDiagnostic))
	assert.Nil(t, AvailableAlgorithms("platinum"))
}

func TestAvailableAlgorithms_ReturnsCopy(t *testing.T) {
	got := AvailableAlgorithms(EnterpriseTransformation)
	got[0] = "XXX"
	assert.Equal(t, scoring.AlgorithmOCI, AvailableAlgorithms(EnterpriseTransformation)[0])
}

func TestLookup_ExpressHasNoConfiguration(t *testing.T) {
	_, ok := Lookup(ExpressDiagnostic)
	assert.False(t, ok)
	assert.True(t, IsKnown(ExpressDiagnostic))

	cfg, ok := Lookup(MonthlySubscription)
	require.True(t, ok)
	assert.Equal(t, 120, cfg.AssessmentScope.QuestionCount)
	assert.Equal(t, 149, cfg.Price)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Normalized{Tier: MonthlySubscription, NormalizedTier: MonthlySubscription}, Normalize(MonthlySubscription))

	got := Normalize(ComprehensivePackage)
	assert.True(t, got.IsLegacy)
	assert.Equal(t, EnterpriseTransformation, got.NormalizedTier)
	assert.Equal(t, ComprehensivePackage, got.Original)

	assert.Equal(t, MonthlySubscription, Normalize(ExpressDiagnostic).NormalizedTier)
}

func TestRankAndAccess(t *testing.T) {
	assert.Equal(t, 1, Rank(MonthlySubscription))
	assert.Equal(t, 2, Rank(EnterpriseTransformation))
	assert.Equal(t, 1, Rank(OneTimeDiagnostic))
	assert.Equal(t, 0, Rank("unknown"))

	assert.True(t, HasAccess(EnterpriseTransformation, MonthlySubscription))
	assert.False(t, HasAccess(MonthlySubscription, EnterpriseTransformation))
	assert.True(t, HasAccess(ComprehensivePackage, EnterpriseTransformation))
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "Monthly Platform Access", DisplayLabel(MonthlySubscription))
	assert.Equal(t, "Enterprise Realignment", DisplayLabel(EnterpriseTransformation))
	assert.Equal(t, "express-diagnostic (Legacy)", DisplayLabel(ExpressDiagnostic))
	assert.Equal(t, "custom", DisplayLabel("custom"))
}

func TestHasFeature(t *testing.T) {
	powerBI := func(f Features) bool { return f.PowerBIEmbedded }

	assert.True(t, HasFeature(EnterpriseTransformation, powerBI))
	assert.False(t, HasFeature(MonthlySubscription, powerBI))
	assert.False(t, HasFeature(ExpressDiagnostic, powerBI))
}

func TestOrgChart(t *testing.T) {
	assert.Equal(t, OrgChartCapabilities{CanGenerate: true, CanModelScenarios: true, CanCollaborate: true, MaxScenarios: 10}, OrgChart(MonthlySubscription))
	assert.Equal(t, OrgChartCapabilities{}, OrgChart("unknown"))
}

func TestValidateAccess(t *testing.T) {
	tests := []struct {
		name  string
		tier  PricingTier
		usage Usage
		valid bool
		msg   string
	}{
		{"within limits", MonthlySubscription, Usage{UsersCount: 25, ScenariosCreated: 9}, true, ""},
		{"too many users", MonthlySubscription, Usage{UsersCount: 26}, false, "User limit reached (25). Upgrade to add more users."},
		{"scenario limit is inclusive", MonthlySubscription, Usage{ScenariosCreated: 10}, false, "Scenario limit reached (10). Upgrade for unlimited scenarios."},
		{"enterprise unlimited", EnterpriseTransformation, Usage{UsersCount: 1000, ScenariosCreated: 1000, AssessmentsUsed: 1000}, true, ""},
		{"no configuration allows", ExpressDiagnostic, Usage{UsersCount: 1000}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAccess(tt.tier, tt.usage)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.msg, got.Message)
			assert.Equal(t, !tt.valid, got.UpgradeRequired)
		})
	}
}

func TestIndustrySections(t *testing.T) {
	// monthly: min(45, 36) = 36 questions -> 4 sections
	assert.Len(t, IndustrySections("higher-education", MonthlySubscription), 4)
	// enterprise: min(45, 48) = 45 -> 5 sections
	assert.Len(t, IndustrySections("higher-education", EnterpriseTransformation), 5)
	// healthcare enterprise: min(40, 48) = 40 -> 4 sections
	assert.Equal(t, "Clinical Operations & Patient Care", IndustrySections("healthcare", EnterpriseTransformation)[0])
	assert.Len(t, IndustrySections("healthcare", EnterpriseTransformation), 4)

	assert.Empty(t, IndustrySections("retail", EnterpriseTransformation))
	assert.Empty(t, IndustrySections("healthcare", OneTimeDiagnostic))
}
