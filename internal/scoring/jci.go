package scoring

// ClarityLevel classifies a JCI score.
type ClarityLevel string

const (
	ClarityExcellent        ClarityLevel = "excellent"
	ClarityGood             ClarityLevel = "good"
	ClarityNeedsImprovement ClarityLevel = "needs-improvement"
	ClarityCritical         ClarityLevel = "critical"
)

// JCIResult is the Job Clarity Index.
type JCIResult struct {
	Score               int          `json:"score" bson:"score"`
	RoleDefinition      float64      `json:"roleDefinition" bson:"roleDefinition"`
	Accountability      float64      `json:"accountability" bson:"accountability"`
	ProcessTransparency float64      `json:"processTransparency" bson:"processTransparency"`
	ClarityLevel        ClarityLevel `json:"clarityLevel" bson:"clarityLevel"`
	Recommendations     []string     `json:"recommendations" bson:"recommendations"`
}

const (
	keyRoleDefinition      = "roleDefinition"
	keyAccountability      = "accountability"
	keyProcessTransparency = "processTransparency"
)

var jciIndex = Index{
	Name: "JCI",
	Metrics: []Metric{
		{Key: keyRoleDefinition, Selector: Tagged("ROLE", "DEFINITION"), Default: 60},
		{Key: keyAccountability, Selector: Tagged("ACCOUNTABILITY", "RESPONSIBILITY"), Default: 60},
		{Key: keyProcessTransparency, Selector: Tagged("TRANSPARENCY", "PROCESS"), Default: 60},
	},
	Components: []Component{
		{Key: keyRoleDefinition, Weight: 0.40},
		{Key: keyAccountability, Weight: 0.35},
		{Key: keyProcessTransparency, Weight: 0.25},
	},
	Bands: []Band{
		{Min: 85, Label: string(ClarityExcellent)},
		{Min: 70, Label: string(ClarityGood)},
		{Min: 50, Label: string(ClarityNeedsImprovement)},
		{Min: 0, Label: string(ClarityCritical)},
	},
	Rules: []Rule{
		{Key: keyRoleDefinition, Threshold: 60, Text: "Develop clear job descriptions and role definitions"},
		{Key: keyAccountability, Threshold: 60, Text: "Implement accountability frameworks and performance metrics"},
		{Key: keyProcessTransparency, Threshold: 60, Text: "Improve process documentation and transparency"},
		{Key: ScoreKey, Threshold: 50, Text: "Comprehensive role clarity initiative required"},
	},
}

// CalculateJCI scores role definition, accountability and process transparency.
func CalculateJCI(responses []AssessmentResponse) JCIResult {
	ev := jciIndex.Evaluate(responses)
	return JCIResult{
		Score:               ev.Score,
		RoleDefinition:      ev.Values[keyRoleDefinition],
		Accountability:      ev.Values[keyAccountability],
		ProcessTransparency: ev.Values[keyProcessTransparency],
		ClarityLevel:        ClarityLevel(ev.Level),
		Recommendations:     ev.Recommendations,
	}
}

// jciLevel classifies a bare score against the JCI bands.
func jciLevel(score int) ClarityLevel {
	return ClarityLevel(classify(float64(score), jciIndex.Bands))
}
