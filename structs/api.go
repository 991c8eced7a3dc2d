package structs

// ScoreRequest is the body of POST /api/score. Score is a pointer so that a
// reported zero still binds; absence and negatives are both rejected.
type ScoreRequest struct {
	Score *int `json:"score" binding:"required"`
}

// QuoteResponse is what GET /api/quote hands to the client: the text with the
// missing word blanked out, plus everything needed to grade the answer.
type QuoteResponse struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	FullText      string   `json:"fullText"`
	Author        string   `json:"author"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
}
