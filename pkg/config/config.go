package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string

	UsersCollection          string
	ServiceCentersCollection string
	AppointmentsCollection   string

	AvatarEndpoint string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		UsersCollection:          getEnv("USERS_COLLECTION", "users"),
		ServiceCentersCollection: getEnv("SERVICE_CENTERS_COLLECTION", "service_centers"),
		AppointmentsCollection:   getEnv("APPOINTMENTS_COLLECTION", "appointments"),

		AvatarEndpoint: getEnv("AVATAR_ENDPOINT", "https://ui-avatars.com/api"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
