package scoring

import "strings"

// AssessmentResponse is one answered question of a submission.
type AssessmentResponse struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Value      float64  `json:"value" bson:"value"` // 1-5 for Likert, raw magnitude for numeric questions
	Section    string   `json:"section" bson:"section"`
	Tags       []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// HasTag reports whether the response carries tag.
func (r AssessmentResponse) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Selector picks the responses feeding one metric. A response matches when it
// carries any of Tags or its section contains any of Sections.
type Selector struct {
	Tags     []string
	Sections []string
}

// Tagged builds a selector over tags.
func Tagged(tags ...string) Selector {
	return Selector{Tags: tags}
}

// InSection builds a selector over section substrings.
func InSection(sections ...string) Selector {
	return Selector{Sections: sections}
}

// Matches reports whether r belongs to the selector's subset.
func (s Selector) Matches(r AssessmentResponse) bool {
	for _, tag := range s.Tags {
		if r.HasTag(tag) {
			return true
		}
	}
	for _, section := range s.Sections {
		if strings.Contains(r.Section, section) {
			return true
		}
	}
	return false
}

// Select returns the responses matching sel, in input order.
func Select(responses []AssessmentResponse, sel Selector) []AssessmentResponse {
	var out []AssessmentResponse
	for _, r := range responses {
		if sel.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
