package utils

import (
	"os"
	"strings"
)

// Config is built once at startup from the environment. Handlers and guards
// read it through the package-level Conf instead of os.Getenv.
type Config struct {
	Port               string
	DBConnectionString string
	RedisURL           string

	// Identity provider
	FirebaseProjectID string

	// Admin allow-list, lowercased at load time
	AdminEmails []string

	// Outbound mail
	MailKey    string
	MailSender string

	// Media backends, tried in this order
	UseCloudinary       bool
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	UseBucketStorage bool
	BucketName       string
	BucketToken      string

	UseLocalStorage bool
	UploadDir       string
}

var Conf *Config

func LoadConfig() *Config {
	c := &Config{
		Port:               envDefault("PORT", "4000"),
		DBConnectionString: os.Getenv("DB_CONNECTION_STRING"),
		RedisURL:           os.Getenv("REDIS_URL"),
		FirebaseProjectID:  os.Getenv("FIREBASE_PROJECT_ID"),
		AdminEmails:        parseAdminEmails(os.Getenv("ADMIN_EMAILS")),
		MailKey:            os.Getenv("MAIL_KEY"),
		MailSender:         envDefault("MAIL_SENDER", "254realtors.homes@gmail.com"),

		UseCloudinary:       envBool("USE_CLOUDINARY", false),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    os.Getenv("CLOUDINARY_FOLDER"),

		UseBucketStorage: envBool("USE_BUCKET_STORAGE", false),
		BucketName:       os.Getenv("BUCKET"),
		BucketToken:      os.Getenv("BUCKET_TOKEN"),

		UseLocalStorage: envBool("USE_LOCAL_STORAGE", true),
		UploadDir:       envDefault("UPLOAD_DIR", "uploads/properties"),
	}
	Conf = c
	return c
}

// IsAdmin reports allow-list membership, case-insensitively.
func (c *Config) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

// AdminConfigured is false when the allow-list is empty, which is a
// configuration failure rather than a permission denial.
func (c *Config) AdminConfigured() bool {
	return len(c.AdminEmails) > 0
}

func parseAdminEmails(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		if e := strings.ToLower(strings.TrimSpace(part)); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1" || v == "yes"
}
