package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Session provider. Tokens are issued elsewhere; we only verify them
	// against the provider's JWKS.
	AuthIssuerURL string `envconfig:"AUTH_ISSUER_URL"`

	// Leaderboard cache. Empty address disables caching.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// Avatar object storage.
	AvatarBucket    string `envconfig:"AVATAR_BUCKET" default:"lumbung-avatars"`
	AvatarURLPrefix string `envconfig:"AVATAR_URL_PREFIX"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}
