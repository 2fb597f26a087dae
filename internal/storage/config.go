package storage

import "os"

// MinIOConfig holds the image storage connection settings.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the base under which uploaded objects are reachable from
	// the outside (CDN or reverse proxy). Falls back to the endpoint.
	PublicURL string
}

// LoadMinIOConfig loads image storage config from the environment.
func LoadMinIOConfig() *MinIOConfig {
	return &MinIOConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:    getEnv("MINIO_BUCKET", "pressmark-images"),
		PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
	}
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
