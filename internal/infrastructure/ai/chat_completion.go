package ai

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// FirstMessage returns the first choice's content verbatim.
func (c chatCompletionResponse) FirstMessage() (string, bool) {
	if len(c.Choices) == 0 {
		return "", false
	}
	return c.Choices[0].Message.Content, true
}
