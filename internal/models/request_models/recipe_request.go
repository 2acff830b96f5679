package request_models

type SuggestRecipeRequest struct {
	Model       string   `json:"model"`
	MaxTokens   *int     `json:"maxTokens"`
	Temperature *float32 `json:"temperature"`
}
