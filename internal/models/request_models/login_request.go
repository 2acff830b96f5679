package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6,max=72"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Age      *int     `json:"age"`
	Gender   string   `json:"gender"`
}

type OnboardingRequest struct {
	Username *string  `json:"username"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Age      *int     `json:"age"`
	Birthday *string  `json:"birthday"`
	Gender   *string  `json:"gender"`
}

type OAuthCallbackRequest struct {
	Code string `json:"code" binding:"required"`
}
