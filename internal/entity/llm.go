package entity

// LLMCompleteRequest is the payload sent to the LLM gateway. One prompt in,
// one markdown blob out; no streaming, no conversation state.
type LLMCompleteRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type LLMCompleteResponse struct {
	Text string `json:"text"`
}

// ASRTranscribeResponse is returned by the speech-to-text service.
type ASRTranscribeResponse struct {
	Transcription string `json:"transcription"`
}
