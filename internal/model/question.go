package model

// Question is a single survey step with a fixed set of selectable options
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// HasOption reports whether opt is one of the question's selectable options
func (q *Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}
