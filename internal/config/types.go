package config

// holds all environment-derived settings for the server
type Config struct {
	GeminiKey          string
	DatabaseURL        string
	JWTSecret          string
	Environment        string
	AdminPassword      string
	GoogleClientID     string
	GoogleClientSecret string
	BaseURL            string
}
