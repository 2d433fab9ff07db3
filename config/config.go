package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"retailpulse.com/retailpulse/core"
	"retailpulse.com/retailpulse/utils"
)

type Config struct {
	Port          string `yaml:"port"`
	AllowOrigins  string `yaml:"allowOrigins"`
	SessionSecret string `yaml:"sessionSecret"`
	Timezone      string `yaml:"timezone"`
	PhoneRegion   string `yaml:"phoneRegion"`

	SessionTTL           time.Duration `yaml:"sessionTTL"`
	GeofenceRadiusMeters float64       `yaml:"geofenceRadiusMeters"`

	EngagementDailyTarget   int `yaml:"engagementDailyTarget"`
	ConversationDailyTarget int `yaml:"conversationDailyTarget"`

	location *time.Location
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func atof(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// Load builds the configuration from the environment, optionally seeded from
// a YAML file named by CONFIG_FILE. Environment variables win over the file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                    "5000",
		AllowOrigins:            "*",
		SessionSecret:           "retailpulse-session-secret",
		Timezone:                "Africa/Lagos",
		PhoneRegion:             "NG",
		SessionTTL:              core.SessionLifetime,
		GeofenceRadiusMeters:    core.DefaultGeofenceRadiusMeters,
		EngagementDailyTarget:   50,
		ConversationDailyTarget: 30,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getenv("PORT", cfg.Port)
	cfg.AllowOrigins = getenv("ALLOW_ORIGINS", cfg.AllowOrigins)
	cfg.SessionSecret = getenv("SESSION_SECRET", cfg.SessionSecret)
	cfg.Timezone = getenv("TZ_DEFAULT", cfg.Timezone)
	cfg.PhoneRegion = getenv("PHONE_REGION", cfg.PhoneRegion)
	if hours := atoi("SESSION_TTL_HOURS", 0); hours > 0 {
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	cfg.GeofenceRadiusMeters = atof("GEOFENCE_RADIUS_METERS", cfg.GeofenceRadiusMeters)
	cfg.EngagementDailyTarget = atoi("ENGAGEMENT_DAILY_TARGET", cfg.EngagementDailyTarget)
	cfg.ConversationDailyTarget = atoi("CONVERSATION_DAILY_TARGET", cfg.ConversationDailyTarget)

	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		cfg.location = loc
	} else {
		cfg.location = utils.LagosTZ
	}

	return cfg, nil
}

// Location is the timezone login statuses are classified in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return utils.LagosTZ
	}
	return c.location
}
