package scoring

// ComplexityLevel classifies an OCI score.
type ComplexityLevel string

const (
	ComplexityLow      ComplexityLevel = "low"
	ComplexityModerate ComplexityLevel = "moderate"
	ComplexityHigh     ComplexityLevel = "high"
	ComplexityCritical ComplexityLevel = "critical"
)

// OCIResult is the Organizational Complexity Index: structural friction and
// role clarity weighed against strategic alignment.
type OCIResult struct {
	Score              int             `json:"score" bson:"score"`
	StructuralFriction float64         `json:"structuralFriction" bson:"structuralFriction"`
	RoleClarity        float64         `json:"roleClarity" bson:"roleClarity"`
	StrategicAlignment float64         `json:"strategicAlignment" bson:"strategicAlignment"`
	Complexity         ComplexityLevel `json:"complexity" bson:"complexity"`
	Recommendations    []string        `json:"recommendations" bson:"recommendations"`
}

const (
	keyStructuralFriction = "structuralFriction"
	keyRoleClarity        = "roleClarity"
	keyStrategicAlignment = "strategicAlignment"
)

// RecommendRestructuring is shared wording other callers match on.
const RecommendRestructuring = "Comprehensive organizational restructuring recommended"

var ociIndex = Index{
	Name: "OCI",
	Metrics: []Metric{
		{Key: keyStructuralFriction, Selector: Tagged("STRUCTURE", "HIERARCHY"), Scale: Inverted, Default: 50},
		{Key: keyRoleClarity, Selector: Tagged("ACCOUNTABILITY", "RESPONSIBILITY"), Scale: Direct, Default: 60},
		{Key: keyStrategicAlignment, Selector: InSection("Strategic"), Scale: Direct, Default: 60},
	},
	Components: []Component{
		{Key: keyStructuralFriction, Weight: 0.40, Complement: true},
		{Key: keyRoleClarity, Weight: 0.35},
		{Key: keyStrategicAlignment, Weight: 0.25},
	},
	Bands: []Band{
		{Min: 80, Label: string(ComplexityLow)},
		{Min: 60, Label: string(ComplexityModerate)},
		{Min: 40, Label: string(ComplexityHigh)},
		{Min: 0, Label: string(ComplexityCritical)},
	},
	Rules: []Rule{
		{Key: keyStructuralFriction, Threshold: 60, Above: true, Text: "Reduce structural friction through process streamlining"},
		{Key: keyRoleClarity, Threshold: 60, Text: "Improve role clarity and accountability frameworks"},
		{Key: keyStrategicAlignment, Threshold: 60, Text: "Enhance strategic alignment across organizational levels"},
		{Key: ScoreKey, Threshold: 50, Text: RecommendRestructuring},
	},
}

// CalculateOCI scores organizational complexity. organizationType is part of
// the calling contract but does not enter the formula.
func CalculateOCI(responses []AssessmentResponse, organizationType string) OCIResult {
	_ = organizationType
	ev := ociIndex.Evaluate(responses)
	return OCIResult{
		Score:              ev.Score,
		StructuralFriction: ev.Values[keyStructuralFriction],
		RoleClarity:        ev.Values[keyRoleClarity],
		StrategicAlignment: ev.Values[keyStrategicAlignment],
		Complexity:         ComplexityLevel(ev.Level),
		Recommendations:    ev.Recommendations,
	}
}

// ociLevel classifies a bare score against the OCI bands.
func ociLevel(score int) ComplexityLevel {
	return ComplexityLevel(classify(float64(score), ociIndex.Bands))
}
