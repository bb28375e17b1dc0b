package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "app",
			DBName:  "shubhmangal",
			SSLMode: "disable",
		},
		JWT: JWTConfig{
			Secret:    "0123456789abcdef0123456789abcdef",
			ExpiryMin: 60,
		},
		Chat: ChatConfig{ProfileLimit: 100},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "database host"},
		{"missing db user", func(c *Config) { c.Database.User = "" }, "database user"},
		{"missing db name", func(c *Config) { c.Database.DBName = "" }, "database name"},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }, "JWT secret"},
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "short" }, "32 characters"},
		{"zero profile limit", func(c *Config) { c.Chat.ProfileLimit = 0 }, "profile limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Password = "pw"
	dsn := cfg.Database.GetDSN()
	want := "host=localhost port=5432 user=app password=pw dbname=shubhmangal sslmode=disable"
	if dsn != want {
		t.Fatalf("GetDSN() = %q, want %q", dsn, want)
	}
}

func TestGetAddr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: 6379}
	if got := r.GetAddr(); got != "localhost:6379" {
		t.Fatalf("GetAddr() = %q", got)
	}
}
