package scoring

// LEIResult is the Leadership Effectiveness Index. Instead of a composite it
// derives a list of development priorities.
type LEIResult struct {
	LeadershipScore             float64  `json:"leadershipScore" bson:"leadershipScore"`
	ManagementCapacity          float64  `json:"managementCapacity" bson:"managementCapacity"`
	OrganizationalEffectiveness float64  `json:"organizationalEffectiveness" bson:"organizationalEffectiveness"`
	DevelopmentPriorities       []string `json:"developmentPriorities" bson:"developmentPriorities"`
	Recommendations             []string `json:"recommendations" bson:"recommendations"`
}

const (
	keyLeadershipScore             = "leadershipScore"
	keyOrganizationalEffectiveness = "organizationalEffectiveness"
	keyLowest                      = "lowest"
)

var leiIndex = Index{
	Name: "LEI",
	Metrics: []Metric{
		{Key: keyLeadershipScore, Selector: Tagged("LEI", "LEADERSHIP"), Default: 60},
		{Key: keyManagementCapacity, Selector: Tagged("MANAGEMENT", "SUPERVISION"), Default: 60},
		{Key: keyOrganizationalEffectiveness, Selector: Tagged("EFFECTIVENESS", "PERFORMANCE"), Default: 60},
	},
	Rules: []Rule{
		{Key: keyLeadershipScore, Threshold: 60, Text: "Implement leadership development programs"},
		{Key: keyManagementCapacity, Threshold: 60, Text: "Provide management training and coaching"},
		{Key: keyOrganizationalEffectiveness, Threshold: 60, Text: "Focus on organizational effectiveness initiatives"},
	},
}

var leiPriorities = []Rule{
	{Key: keyLeadershipScore, Threshold: 60, Text: "Leadership Development"},
	{Key: keyManagementCapacity, Threshold: 60, Text: "Management Skills Training"},
	{Key: keyOrganizationalEffectiveness, Threshold: 60, Text: "Organizational Effectiveness Improvement"},
	{Key: keyLowest, Threshold: 40, Text: "Comprehensive Leadership Overhaul"},
}

// CalculateLEI rates leadership, management capacity and effectiveness.
func CalculateLEI(responses []AssessmentResponse) LEIResult {
	ev := leiIndex.Evaluate(responses)
	v := ev.Values
	v[keyLowest] = minOf(v[keyLeadershipScore], v[keyManagementCapacity], v[keyOrganizationalEffectiveness])

	return LEIResult{
		LeadershipScore:             v[keyLeadershipScore],
		ManagementCapacity:          v[keyManagementCapacity],
		OrganizationalEffectiveness: v[keyOrganizationalEffectiveness],
		DevelopmentPriorities:       applyRules(v, leiPriorities),
		Recommendations:             ev.Recommendations,
	}
}
