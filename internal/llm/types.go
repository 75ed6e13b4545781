package llm

// Usage holds token accounting for one upstream call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Result holds the raw text of one upstream call together with its usage.
type Result struct {
	Text  string
	Usage Usage
}
