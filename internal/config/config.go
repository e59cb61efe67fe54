package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	AnthropicAPIKey    string
	BirthdayChannelID  string
	AdminChannelID     string
	DatabasePath       string
	ScheduleTime       string
	Timezone           string
	Port               string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		AnthropicAPIKey:    getEnv("ANTHROPIC_API_KEY", ""),
		BirthdayChannelID:  getEnv("BIRTHDAY_CHANNEL_ID", ""),
		AdminChannelID:     getEnv("ADMIN_CHANNEL_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./birthdays.db"),
		ScheduleTime:       getEnv("SCHEDULE_TIME", "09:00"),
		Timezone:           getEnv("TIMEZONE", "UTC"),
		Port:               getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
