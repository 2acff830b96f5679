package response_models

type RecipeResponse struct {
	Provider    string   `json:"provider"`
	Model       string   `json:"model"`
	Ingredients []string `json:"ingredients"`
	Recipe      string   `json:"recipe"`
}
