package cmd

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variables consulted for flag defaults.
const (
	envRepoPath = "GPREPO_REPO_PATH"
	envPreamble = "GPREPO_PREAMBLE"
	envOutput   = "GPREPO_OUTPUT"
	envIgnore   = "GPREPO_IGNORE"
	envDebug    = "GPREPO_DEBUG"
)

// loadDotEnv loads ./.env if present. Variables already set win.
func loadDotEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// envList splits a comma separated variable, dropping empty items.
func envList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(envString(key))
	return err == nil && v
}
