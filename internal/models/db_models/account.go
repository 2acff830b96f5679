package db_models

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

type Account struct {
	BaseModel
	Username     string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	Provider     string `gorm:"not null;default:password"`

	// Profile, filled by onboarding.
	Weight   *float64
	Height   *float64
	Age      *int
	Birthday string
	Gender   string
}
