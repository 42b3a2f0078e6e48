package openrouter

// chat completions request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// responseFormat requests JSON-constrained output from the model.
type responseFormat struct {
	Type string `json:"type"`
}

// chat completions response envelope. The generated text is nested in
// choices[0].message.content.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// advisoryContent is the constrained JSON reply the model is instructed to
// produce. BufferMinutes is a json.Number-compatible float so model replies
// like 15 and 15.0 both decode.
type advisoryContent struct {
	Analysis      string   `json:"analysis"`
	BufferMinutes *float64 `json:"buffer_minutes"`
}
