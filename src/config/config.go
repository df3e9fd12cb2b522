package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"desktop-utils/src/dpi"
	"desktop-utils/src/resources"
)

const (
	ConfigPathEnvVar        = "DESKTOP_UTILS"
	ResourceModuleEnvVar    = "RESOURCE_MODULE"
	ImageResourceTypeEnvVar = "IMAGE_RESOURCE_TYPE"
	DPIAwarenessEnvVar      = "DPI_AWARENESS"
)

type LoadOptions struct {
	ResourceModuleOverride string
	DPIAwarenessOverride   string
}

type Config struct {
	EnableFileLogging bool
	CopyToClipboard   bool
	// ResourceModule is the module string and image resources are read
	// from. Empty means the running executable.
	ResourceModule    string
	ImageResourceType string
	DPIAwareness      dpi.Awareness
	EnvPath           string
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use DESKTOP_UTILS env var as a path to a config file
	envPath := resolveEnvPath()
	dotenvValues := readDotenvValues(envPath)
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	awareness, err := dpi.ParseAwareness(firstNonEmpty(opts.DPIAwarenessOverride, os.Getenv(DPIAwarenessEnvVar)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", DPIAwarenessEnvVar, err)
	}

	cfg := &Config{
		EnableFileLogging: envBool("ENABLE_FILE_LOGGING"),
		CopyToClipboard:   envBool("COPY_TO_CLIPBOARD"),
		ResourceModule:    resolveResourceModule(opts, dotenvValues),
		ImageResourceType: strings.ToUpper(getEnvWithDefault(ImageResourceTypeEnvVar, resources.TypePNG)),
		DPIAwareness:      awareness,
		EnvPath:           envPath,
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(ConfigPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func readDotenvValues(envPath string) map[string]string {
	if envPath == "" {
		return map[string]string{}
	}

	values, err := godotenv.Read(envPath)
	if err != nil {
		return map[string]string{}
	}

	return values
}

// resolveResourceModule applies option > .env > environment precedence. The
// .env value wins over the environment because godotenv.Load never
// overrides variables that are already set.
func resolveResourceModule(opts LoadOptions, dotenvValues map[string]string) string {
	module := strings.TrimSpace(os.Getenv(ResourceModuleEnvVar))

	if dotenvModule := strings.TrimSpace(dotenvValues[ResourceModuleEnvVar]); dotenvModule != "" {
		module = dotenvModule
	}

	if override := strings.TrimSpace(opts.ResourceModuleOverride); override != "" {
		module = override
	}

	return module
}

func envBool(key string) bool {
	return strings.ToLower(strings.TrimSpace(os.Getenv(key))) == "true"
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
