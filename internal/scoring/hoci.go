package scoring

// HOCIResult is the Hierarchical Optimization Coefficient Index, computed for
// healthcare organizations only. It has no categorical level.
type HOCIResult struct {
	Score                 int      `json:"score" bson:"score"`
	DecisionEfficiency    float64  `json:"decisionEfficiency" bson:"decisionEfficiency"`
	DepartmentalClarity   float64  `json:"departmentalClarity" bson:"departmentalClarity"`
	HierarchyOptimization float64  `json:"hierarchyOptimization" bson:"hierarchyOptimization"`
	Recommendations       []string `json:"recommendations" bson:"recommendations"`
}

const (
	keyDecisionEfficiency    = "decisionEfficiency"
	keyDepartmentalClarity   = "departmentalClarity"
	keyHierarchyOptimization = "hierarchyOptimization"
)

var hociIndex = Index{
	Name: "HOCI",
	Metrics: []Metric{
		{Key: keyDecisionEfficiency, Selector: Tagged("DECISION", "GOVERNANCE"), Default: 60},
		{Key: keyDepartmentalClarity, Selector: Tagged("DEPARTMENT", "COORDINATION"), Default: 60},
		{Key: keyHierarchyOptimization, Selector: Tagged("HIERARCHY", "SPAN_CONTROL"), Default: 60},
	},
	Components: []Component{
		{Key: keyDecisionEfficiency, Weight: 0.40},
		{Key: keyDepartmentalClarity, Weight: 0.35},
		{Key: keyHierarchyOptimization, Weight: 0.25},
	},
	Rules: []Rule{
		{Key: keyDecisionEfficiency, Threshold: 60, Text: "Streamline decision-making processes"},
		{Key: keyDepartmentalClarity, Threshold: 60, Text: "Improve departmental coordination and communication"},
		{Key: ScoreKey, Threshold: 50, Text: "Comprehensive hierarchy restructuring needed"},
	},
}

// CalculateHOCI scores hierarchy optimization.
func CalculateHOCI(responses []AssessmentResponse, organizationType string) HOCIResult {
	_ = organizationType
	ev := hociIndex.Evaluate(responses)
	return HOCIResult{
		Score:                 ev.Score,
		DecisionEfficiency:    ev.Values[keyDecisionEfficiency],
		DepartmentalClarity:   ev.Values[keyDepartmentalClarity],
		HierarchyOptimization: ev.Values[keyHierarchyOptimization],
		Recommendations:       ev.Recommendations,
	}
}
