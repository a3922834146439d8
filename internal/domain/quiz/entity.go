package quiz

// Question is a single generated quiz question. Answer is the correct option
// and never leaves the gateway; clients receive the sanitized View.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Payload is the quiz-generation response from the backend agent.
type Payload struct {
	Questions []Question `json:"questions"`
}

// View is a Question with the answer stripped.
type View struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Sanitize strips correct answers for client delivery.
func Sanitize(qs []Question) []View {
	views := make([]View, 0, len(qs))
	for _, q := range qs {
		views = append(views, View{Question: q.Question, Options: q.Options})
	}
	return views
}
