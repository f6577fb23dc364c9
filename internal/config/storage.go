package config

type StorageConfig struct {
	Provider  string `yaml:"provider"` // s3, local
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	CDNDomain string `yaml:"cdn_domain"`
	LocalPath string `yaml:"local_path"`
	LocalURL  string `yaml:"local_url"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		Region:    getEnv("AWS_REGION", "us-east-1"),
		Bucket:    getEnv("S3_BUCKET", ""),
		CDNDomain: getEnv("CDN_DOMAIN", ""),
		LocalPath: getEnv("STORAGE_LOCAL_PATH", "./uploads"),
		LocalURL:  getEnv("STORAGE_LOCAL_URL", "http://localhost:8080/uploads"),
	}
}
