package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	// Helper function to set environment variables for a test
	setEnv := func(key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	clearEnv := func() {
		for _, key := range []string{
			"CARBCYCLE_DB_PATH", "CARBCYCLE_USER_ID",
			"TELEGRAM_BOT_TOKEN", "TELEGRAM_WEBHOOK_URL",
			"TELEGRAM_ALLOWED_USER_IDS", "TELEGRAM_ADMIN_ID", "PORT",
		} {
			os.Unsetenv(key)
		}
	}

	t.Run("Defaults", func(t *testing.T) {
		clearEnv()
		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DatabasePath != "data/carbcycle.db" {
			t.Errorf("Expected default database path, got '%s'", cfg.DatabasePath)
		}
		if cfg.DefaultUserID != "local" {
			t.Errorf("Expected default user id 'local', got '%s'", cfg.DefaultUserID)
		}
		if cfg.Port != "8080" {
			t.Errorf("Expected default port 8080, got '%s'", cfg.Port)
		}
	})

	t.Run("FullyConfigured", func(t *testing.T) {
		clearEnv()
		setEnv("CARBCYCLE_DB_PATH", "/tmp/cc.db")
		setEnv("CARBCYCLE_USER_ID", "sam")
		setEnv("TELEGRAM_BOT_TOKEN", "token")
		setEnv("TELEGRAM_WEBHOOK_URL", "https://bot.test/webhook")
		setEnv("TELEGRAM_ALLOWED_USER_IDS", "123, 456")
		setEnv("TELEGRAM_ADMIN_ID", "123")
		setEnv("PORT", "9000")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DatabasePath != "/tmp/cc.db" {
			t.Errorf("Expected database path '/tmp/cc.db', got '%s'", cfg.DatabasePath)
		}
		if len(cfg.TelegramAllowedUserIDs) != 2 || cfg.TelegramAllowedUserIDs[0] != 123 || cfg.TelegramAllowedUserIDs[1] != 456 {
			t.Errorf("Expected allowed user IDs [123 456], got %v", cfg.TelegramAllowedUserIDs)
		}
		if cfg.AdminTelegramID != 123 {
			t.Errorf("Expected admin ID 123, got %d", cfg.AdminTelegramID)
		}
		if err := cfg.RequireTelegram(); err != nil {
			t.Errorf("Expected RequireTelegram to pass, got %v", err)
		}
	})

	t.Run("BadAllowedUserIDs", func(t *testing.T) {
		clearEnv()
		setEnv("TELEGRAM_ALLOWED_USER_IDS", "123,abc")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for non-numeric allowed user ID, got nil")
		}
	})

	t.Run("BadAdminID", func(t *testing.T) {
		clearEnv()
		setEnv("TELEGRAM_ADMIN_ID", "not-a-number")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for non-numeric admin ID, got nil")
		}
	})

	t.Run("RequireTelegramMissingToken", func(t *testing.T) {
		clearEnv()
		setEnv("TELEGRAM_WEBHOOK_URL", "https://bot.test/webhook")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		err = cfg.RequireTelegram()
		if err == nil {
			t.Fatal("Expected an error for missing TELEGRAM_BOT_TOKEN, got nil")
		}
		expectedError := "TELEGRAM_BOT_TOKEN environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})
}
