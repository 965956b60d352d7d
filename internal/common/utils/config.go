package utils

import (
	"log"
	"os"

	qconfig "github.com/qiniu/x/config"
)

var (
	DefaultConf Config
)

func InitConf(configFilePath string) {
	err := qconfig.LoadFile(&DefaultConf, configFilePath)
	if err != nil {
		log.Fatalf("failed to load config file, error %v", err)
	}
}

// MongoConfig mongo database configuration.
type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// MailConfig outbound notification mail configuration.
// Provider is "mock" for local development and tests, "smtp" for real delivery.
type MailConfig struct {
	Provider string `json:"provider"`
	SMTPHost string `json:"smtp_host"`
	SMTPPort int    `json:"smtp_port"`
	From     string `json:"from"`
	Username string `json:"username"`
	Password string `json:"password"`
	// SendTimeoutSecond bounds a single delivery attempt. The entity mutation
	// is committed before dispatch, so a slow SMTP server only adds request
	// latency, never inconsistency.
	SendTimeoutSecond int `json:"send_timeout_s"`
}

// DashboardConfig caps for the reporting endpoints.
type DashboardConfig struct {
	// RecentApplicationsLimit caps /dashboard/recent-applications.
	RecentApplicationsLimit int `json:"recent_applications_limit"`
	// UpcomingInterviewsDays default look-ahead window in days.
	UpcomingInterviewsDays int `json:"upcoming_interviews_days"`
	// UpcomingInterviewsLimit default cap for upcoming interviews.
	UpcomingInterviewsLimit int `json:"upcoming_interviews_limit"`
	// RecentActivityLimit default cap for the merged activity feed.
	RecentActivityLimit int `json:"recent_activity_limit"`
}

// Config backend configuration.
type Config struct {
	// DebugLevel 1 prints info/warn/error, 0 additionally prints debug logs.
	DebugLevel int    `json:"debug_level"`
	ListenAddr string `json:"listen_addr"`
	// AllowOrigins CORS whitelist for the frontend hosts.
	AllowOrigins []string `json:"allow_origins"`

	Mongo     *MongoConfig    `json:"mongo"`
	Mail      *MailConfig     `json:"mail"`
	Dashboard DashboardConfig `json:"dashboard"`
}

// NewSample returns a sample configuration.
func NewSample() *Config {
	return &Config{
		DebugLevel: 0,
		ListenAddr: ":8080",
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
		Mongo: &MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "recruit_cube_test",
		},
		Mail: &MailConfig{
			Provider:          "mock",
			SMTPHost:          os.Getenv("RECRUIT_SMTP_HOST"),
			SMTPPort:          587,
			From:              "hr@example.com",
			SendTimeoutSecond: 10,
		},
		Dashboard: DashboardConfig{
			RecentApplicationsLimit: 10,
			UpcomingInterviewsDays:  7,
			UpcomingInterviewsLimit: 5,
			RecentActivityLimit:     10,
		},
	}
}
