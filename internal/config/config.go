package config

import "os"

// Config collects everything the app reads from the environment.
type Config struct {
	Addr        string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	JWTSecret   string
	OrderPrefix string

	BkashBaseURL   string
	BkashAppKey    string
	BkashAppSecret string
	BkashUsername  string
	BkashPassword  string

	PaymentSuccessURL  string
	PaymentFailureURL  string
	PaymentCallbackURL string
}

func Load() Config {
	return Config{
		Addr:        getenv("BANGLABAZAAR_ADDR", ":8080"),
		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getenv("MONGO_DB", "banglabazaar"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		OrderPrefix: getenv("ORDER_PREFIX", "BB"),

		BkashBaseURL:   getenv("BKASH_BASE_URL", "https://tokenized.sandbox.bka.sh/v1.2.0-beta"),
		BkashAppKey:    os.Getenv("BKASH_APP_KEY"),
		BkashAppSecret: os.Getenv("BKASH_APP_SECRET"),
		BkashUsername:  os.Getenv("BKASH_USERNAME"),
		BkashPassword:  os.Getenv("BKASH_PASSWORD"),

		PaymentSuccessURL:  getenv("PAYMENT_SUCCESS_URL", "http://localhost:3000/payment/success"),
		PaymentFailureURL:  getenv("PAYMENT_FAILURE_URL", "http://localhost:3000/payment/failure"),
		PaymentCallbackURL: getenv("PAYMENT_CALLBACK_URL", "http://localhost:8080/api/payment/bkash/callback"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
