package scoring

import "fmt"

// DSCHResult is the Decisional Span-of-Control Heuristic. OptimalSpan is a
// head count, not a 0-100 score.
type DSCHResult struct {
	OptimalSpan        int      `json:"optimalSpan" bson:"optimalSpan"`
	CurrentEfficiency  float64  `json:"currentEfficiency" bson:"currentEfficiency"`
	ManagementCapacity float64  `json:"managementCapacity" bson:"managementCapacity"`
	Recommendations    []string `json:"recommendations" bson:"recommendations"`
}

const (
	keyOptimalSpan        = "optimalSpan"
	keyCurrentEfficiency  = "currentEfficiency"
	keyManagementCapacity = "managementCapacity"

	defaultOptimalSpan = 6
)

var spanSelector = Tagged("DSCH", "SPAN_CONTROL")

var dschIndex = Index{
	Name: "DSCH",
	Metrics: []Metric{
		{Key: keyCurrentEfficiency, Selector: spanSelector, Default: 60},
		{Key: keyManagementCapacity, Selector: Tagged("MANAGEMENT", "LEADERSHIP"), Default: 60},
	},
	Rules: []Rule{
		{Key: keyCurrentEfficiency, Threshold: 60, Format: func(v Values) string {
			return fmt.Sprintf("Optimize span of control to %d direct reports", int(v[keyOptimalSpan]))
		}},
		{Key: keyManagementCapacity, Threshold: 60, Text: "Develop management capabilities and leadership skills"},
		{Key: keyOptimalSpan, Threshold: 5, Text: "Consider flattening organizational hierarchy"},
	},
}

// optimalSpan maps the mean reported complexity of span questions to a
// recommended number of direct reports. Higher complexity means a tighter span.
func optimalSpan(spanResponses []AssessmentResponse) int {
	complexity, ok := mean(spanResponses)
	if !ok {
		return defaultOptimalSpan
	}
	switch {
	case complexity >= 4:
		return 4
	case complexity >= 3:
		return 6
	case complexity >= 2:
		return 8
	default:
		return 10
	}
}

// CalculateDSCH recommends a span of control and rates management capacity.
func CalculateDSCH(responses []AssessmentResponse) DSCHResult {
	span := optimalSpan(Select(responses, spanSelector))

	// The span is injected before the rules run so the efficiency message
	// can quote it.
	ix := dschIndex
	ix.Rules = nil
	ev := ix.Evaluate(responses)
	ev.Values[keyOptimalSpan] = float64(span)
	ev.Recommendations = applyRules(ev.Values, dschIndex.Rules)

	return DSCHResult{
		OptimalSpan:        span,
		CurrentEfficiency:  ev.Values[keyCurrentEfficiency],
		ManagementCapacity: ev.Values[keyManagementCapacity],
		Recommendations:    ev.Recommendations,
	}
}
