package config

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnv overrides fields with values from the environment. Unset or
// unparsable variables leave the current value in place.
func (c *Config) ApplyEnv() {
	c.Port = getEnvInt("PORT", c.Port)
	c.LogLevel = getEnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvString("LOG_FORMAT", c.LogFormat)
	c.ContactWindow = getEnvInt("PARSER_CONTACT_WINDOW", c.ContactWindow)
	c.MaxHeaderWords = getEnvInt("PARSER_MAX_HEADER_WORDS", c.MaxHeaderWords)
	c.MaxSuggestions = getEnvInt("ATS_MAX_SUGGESTIONS", c.MaxSuggestions)
	c.Concurrency = getEnvInt("ATS_CONCURRENCY", c.Concurrency)
	c.FetchTimeoutSeconds = getEnvInt("FETCH_TIMEOUT_SECONDS", c.FetchTimeoutSeconds)
	c.Verbose = getEnvBool("VERBOSE", c.Verbose)
	if origins := parseList(getEnvString("CORS_ALLOWED_ORIGINS", "")); len(origins) > 0 {
		c.AllowedOrigins = origins
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// parseList parses a comma-separated list, dropping empty entries.
func parseList(list string) []string {
	if list == "" {
		return nil
	}

	var result []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
