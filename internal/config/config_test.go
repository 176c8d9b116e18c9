package config

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func TestGetEnvDecimal(t *testing.T) {
	fallback := decimal.NewFromInt(10000)

	t.Setenv("STOCKSIM_TEST_CASH", "2500.50")
	if got := getEnvDecimal("STOCKSIM_TEST_CASH", fallback); !got.Equal(decimal.RequireFromString("2500.50")) {
		t.Errorf("got %s, want 2500.50", got)
	}

	t.Setenv("STOCKSIM_TEST_CASH", "not-a-number")
	if got := getEnvDecimal("STOCKSIM_TEST_CASH", fallback); !got.Equal(fallback) {
		t.Errorf("invalid value should fall back, got %s", got)
	}

	t.Setenv("STOCKSIM_TEST_CASH", "-50")
	if got := getEnvDecimal("STOCKSIM_TEST_CASH", fallback); !got.Equal(fallback) {
		t.Errorf("non-positive value should fall back, got %s", got)
	}

	if got := getEnvDecimal("STOCKSIM_TEST_UNSET", fallback); !got.Equal(fallback) {
		t.Errorf("unset key should fall back, got %s", got)
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("STOCKSIM_TEST_SEED", "42")
	if got := getEnvInt64("STOCKSIM_TEST_SEED", 0); got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	t.Setenv("STOCKSIM_TEST_SEED", "4.2")
	if got := getEnvInt64("STOCKSIM_TEST_SEED", 7); got != 7 {
		t.Errorf("invalid value should fall back, got %d", got)
	}

	if got := getEnvInt64("STOCKSIM_TEST_UNSET", 7); got != 7 {
		t.Errorf("unset key should fall back, got %d", got)
	}
}

func TestGodotenvQuoting(t *testing.T) {
	content := `TEST_VAR='value with "double quotes"'`
	tmpfile, err := os.CreateTemp("", ".env.test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	env, err := godotenv.Read(tmpfile.Name())
	if err != nil {
		t.Fatalf("Error reading env: %v", err)
	}

	expected := `value with "double quotes"`
	if env["TEST_VAR"] != expected {
		t.Errorf("Expected %s, got %s", expected, env["TEST_VAR"])
	}
}
