package domain

import (
	"testing"
	"time"
)

func TestSessionStatus_IsTerminal(t *testing.T) {
	cases := []struct {
		status SessionStatus
		want   bool
	}{
		{StatusScheduled, false},
		{StatusInProgress, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}
	for _, tc := range cases {
		if got := tc.status.IsTerminal(); got != tc.want {
			t.Errorf("IsTerminal(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestInterviewSession_DurationMinutes(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(45*time.Minute + 59*time.Second)

	finished := &InterviewSession{StartTime: start, EndTime: &end, Status: StatusCompleted}
	if got := finished.DurationMinutes(time.Now()); got != 45 {
		t.Fatalf("expected 45 minutes truncated, got %d", got)
	}

	active := &InterviewSession{StartTime: start, Status: StatusInProgress}
	now := start.Add(10 * time.Minute)
	if got := active.DurationMinutes(now); got != 10 {
		t.Fatalf("expected 10 minutes against now, got %d", got)
	}

	if got := active.DurationMinutes(start); got != 0 {
		t.Fatalf("expected 0 minutes for a just-started session, got %d", got)
	}
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory("ALGORITHM"); err != nil {
		t.Fatalf("expected ALGORITHM to parse, got %v", err)
	}
	if _, err := ParseCategory("algorithm"); err != ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory for lowercase input, got %v", err)
	}
	if _, err := ParseCategory(""); err != ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory for empty input, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	if _, err := ParseDifficulty("MEDIUM"); err != nil {
		t.Fatalf("expected MEDIUM to parse, got %v", err)
	}
	if _, err := ParseDifficulty("IMPOSSIBLE"); err != ErrInvalidDifficulty {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestUser_Roles(t *testing.T) {
	admin := &User{Roles: []string{RoleUser, RoleAdmin}}
	if !admin.IsAdmin() {
		t.Fatalf("expected admin")
	}
	user := &User{Roles: []string{RoleUser}}
	if user.IsAdmin() {
		t.Fatalf("expected non-admin")
	}
	if !user.HasRole(RoleUser) {
		t.Fatalf("expected HasRole(ROLE_USER) to be true")
	}
	if user.HasRole("ROLE_OTHER") {
		t.Fatalf("expected HasRole(ROLE_OTHER) to be false")
	}
}
