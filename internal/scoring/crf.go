package scoring

// CRFResult is the Communication Resource Framework. It reports three
// sub-scores and no composite.
type CRFResult struct {
	CommunicationEfficiency float64  `json:"communicationEfficiency" bson:"communicationEfficiency"`
	BottleneckRisk          float64  `json:"bottleneckRisk" bson:"bottleneckRisk"`
	ResourceOptimization    float64  `json:"resourceOptimization" bson:"resourceOptimization"`
	Recommendations         []string `json:"recommendations" bson:"recommendations"`
}

const (
	keyCommunicationEfficiency = "communicationEfficiency"
	keyBottleneckRisk          = "bottleneckRisk"
	keyResourceOptimization    = "resourceOptimization"
)

var crfIndex = Index{
	Name: "CRF",
	Metrics: []Metric{
		{Key: keyCommunicationEfficiency, Selector: Tagged("CRF", "COMMUNICATION"), Default: 60},
		{Key: keyBottleneckRisk, Selector: Tagged("BOTTLENECK", "WORKFLOW"), Scale: Inverted, Default: 40},
		{Key: keyResourceOptimization, Selector: Tagged("RESOURCE", "EFFICIENCY"), Default: 60},
	},
	Rules: []Rule{
		{Key: keyCommunicationEfficiency, Threshold: 60, Text: "Improve communication channels and protocols"},
		{Key: keyBottleneckRisk, Threshold: 60, Above: true, Text: "Address communication bottlenecks and workflow issues"},
		{Key: keyResourceOptimization, Threshold: 60, Text: "Optimize resource allocation for communication systems"},
	},
}

// CalculateCRF rates communication efficiency, bottleneck risk and resource use.
func CalculateCRF(responses []AssessmentResponse) CRFResult {
	ev := crfIndex.Evaluate(responses)
	return CRFResult{
		CommunicationEfficiency: ev.Values[keyCommunicationEfficiency],
		BottleneckRisk:          ev.Values[keyBottleneckRisk],
		ResourceOptimization:    ev.Values[keyResourceOptimization],
		Recommendations:         ev.Recommendations,
	}
}
