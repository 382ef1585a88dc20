package dto

// GenerateQuizRequest is the request body for quiz generation.
type GenerateQuizRequest struct {
	Subject    string `json:"subject"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// OptionsResponse holds the four option texts keyed A through D.
type OptionsResponse struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// QuestionResponse represents one generated question in the API response
type QuestionResponse struct {
	ID          string          `json:"id"`
	Question    string          `json:"question"`
	Options     OptionsResponse `json:"options"`
	Answer      string          `json:"answer"`
	Explanation string          `json:"explanation"`
}

// GenerateQuizResponse wraps the ordered question list.
type GenerateQuizResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// EvaluateQuizRequest carries a question set and the user's answers,
// keyed by 1-based question position. The caller holds the question
// set between generation and evaluation; this core stores nothing.
type EvaluateQuizRequest struct {
	Questions []QuestionResponse `json:"questions"`
	Answers   map[string]string  `json:"answers"`
}

// EvaluateQuizResponse reports the score.
type EvaluateQuizResponse struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
