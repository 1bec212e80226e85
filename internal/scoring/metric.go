package scoring

// Scale converts a subset mean into a [0,100] sub-score.
type Scale int

const (
	// Direct maps a Likert mean onto 0-100 (mean x 20).
	Direct Scale = iota
	// Inverted maps a Likert mean onto a 0-100 risk (5 - mean) x 25.
	Inverted
)

func (s Scale) apply(m float64) float64 {
	if s == Inverted {
		return clamp((5-m)*25, 0, 100)
	}
	return clamp(m*20, 0, 100)
}

// Metric is one sub-score: the responses it reads, how the mean is scaled and
// the neutral value reported when nothing matched.
type Metric struct {
	Key      string
	Selector Selector
	Scale    Scale
	Default  float64
}

// Evaluate scores the metric over the full response list.
func (m Metric) Evaluate(responses []AssessmentResponse) float64 {
	avg, ok := mean(Select(responses, m.Selector))
	if !ok {
		return m.Default
	}
	return m.Scale.apply(avg)
}

// Component is one weighted term of a composite score. Complement terms
// contribute 100 - value, for metrics where higher is worse.
type Component struct {
	Key        string
	Weight     float64
	Complement bool
}

// Band is a categorical level reached when score >= Min.
type Band struct {
	Min   float64
	Label string
}

// Rule emits Text when the named value crosses Threshold. Above rules fire on
// value > Threshold, the rest on value < Threshold.
type Rule struct {
	Key       string
	Threshold float64
	Above     bool
	Text      string
	Format    func(Values) string
}

func (r Rule) fires(v Values) bool {
	x := v[r.Key]
	if r.Above {
		return x > r.Threshold
	}
	return x < r.Threshold
}

func (r Rule) message(v Values) string {
	if r.Format != nil {
		return r.Format(v)
	}
	return r.Text
}

// Values holds every named number an index produced: its sub-scores, plus
// "score" when the index has a composite.
type Values map[string]float64

// ScoreKey names the composite score inside Values.
const ScoreKey = "score"

// Index is the table driving one weighted tag aggregate.
type Index struct {
	Name       string
	Metrics    []Metric
	Components []Component
	Bands      []Band
	Rules      []Rule
}

// Evaluation is the raw outcome of an Index.
type Evaluation struct {
	Values          Values
	Score           int
	Level           string
	Recommendations []string
}

// Evaluate runs the index over responses. It never fails: empty subsets fall
// back to each metric's default.
func (ix Index) Evaluate(responses []AssessmentResponse) Evaluation {
	values := make(Values, len(ix.Metrics)+1)
	for _, m := range ix.Metrics {
		values[m.Key] = m.Evaluate(responses)
	}

	ev := Evaluation{Values: values}
	if len(ix.Components) > 0 {
		ev.Score = roundScore(weightedSum(values, ix.Components))
		values[ScoreKey] = float64(ev.Score)
		ev.Level = classify(float64(ev.Score), ix.Bands)
	}
	ev.Recommendations = applyRules(values, ix.Rules)
	return ev
}

// weightedSum adds terms in declaration order. The explicit conversion keeps
// each product rounded on its own so results match across architectures.
func weightedSum(values Values, components []Component) float64 {
	sum := 0.0
	for _, c := range components {
		v := values[c.Key]
		if c.Complement {
			v = 100 - v
		}
		sum += float64(v * c.Weight)
	}
	return sum
}

func classify(score float64, bands []Band) string {
	if len(bands) == 0 {
		return ""
	}
	for _, b := range bands {
		if score >= b.Min {
			return b.Label
		}
	}
	return bands[len(bands)-1].Label
}

func applyRules(values Values, rules []Rule) []string {
	out := []string{}
	for _, r := range rules {
		if r.fires(values) {
			out = append(out, r.message(values))
		}
	}
	return out
}
