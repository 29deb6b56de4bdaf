package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("GALAXY_TEST_VALUE", "classic")
	if got := GetEnv("GALAXY_TEST_VALUE", "quota"); got != "classic" {
		t.Errorf("GetEnv = %q, want classic", got)
	}
	if got := GetEnv("GALAXY_TEST_MISSING", "quota"); got != "quota" {
		t.Errorf("GetEnv fallback = %q, want quota", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset", "", false, 7},
		{"valid", "42", true, 42},
		{"negative", "-3", true, -3},
		{"garbage", "forty", true, 7},
		{"empty", "", true, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("GALAXY_TEST_INT", tt.value)
			}
			if got := GetEnvInt("GALAXY_TEST_INT", 7); got != tt.want {
				t.Errorf("GetEnvInt = %d, want %d", got, tt.want)
			}
		})
	}
}
