package config

import "testing"

func TestAttemptPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{AttemptKeepAll, AttemptKeepAll},
		{AttemptRejectDuplicate, AttemptRejectDuplicate},
		{AttemptOverwrite, AttemptOverwrite},
		{"unlimited", AttemptKeepAll},
		{"", AttemptKeepAll},
	}

	for _, tt := range tests {
		if got := attemptPolicy(tt.in); got != tt.want {
			t.Fatalf("attemptPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_TTL", "12")
	if got := getEnvInt("TEST_TTL", 24); got != 12 {
		t.Fatalf("getEnvInt = %d, want 12", got)
	}

	t.Setenv("TEST_TTL", "not-a-number")
	if got := getEnvInt("TEST_TTL", 24); got != 24 {
		t.Fatalf("getEnvInt with garbage = %d, want default 24", got)
	}

	t.Setenv("TEST_TTL", "-5")
	if got := getEnvInt("TEST_TTL", 24); got != 24 {
		t.Fatalf("getEnvInt with negative = %d, want default 24", got)
	}
}
