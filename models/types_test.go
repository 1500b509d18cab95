// ABOUTME: Tests for TrailTrack data models
// ABOUTME: Validates currency coercion, overdue detection, and lead status fallback
package models

import (
	"testing"
	"time"
)

func TestParseDollars(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1234.5", 123450, false},
		{"0", 0, false},
		{"", 0, false},
		{"$99.99", 9999, false},
		{"10", 1000, false},
		{"0.005", 1, false}, // rounds to nearest cent
		{"abc", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseDollars(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDollars(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDollars(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDollars(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{123450, "$1,234.50"},
		{0, "$0.00"},
		{5, "$0.05"},
		{100000000, "$1,000,000.00"},
		{-2550, "-$25.50"},
	}

	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	cents, err := ParseDollars("1234.5")
	if err != nil {
		t.Fatalf("ParseDollars: %v", err)
	}
	if cents != 123450 {
		t.Fatalf("expected 123450 cents, got %d", cents)
	}
	if got := FormatCents(cents); got != "$1,234.50" {
		t.Errorf("expected $1,234.50, got %s", got)
	}
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"open past due", Task{Status: TaskStatusOpen, DueAt: &past}, true},
		{"open future due", Task{Status: TaskStatusOpen, DueAt: &future}, false},
		{"open no due date", Task{Status: TaskStatusOpen}, false},
		{"done past due", Task{Status: TaskStatusDone, DueAt: &past}, false},
		{"canceled past due", Task{Status: TaskStatusCanceled, DueAt: &past}, false},
	}

	for _, tc := range cases {
		if got := tc.task.IsOverdue(now); got != tc.want {
			t.Errorf("%s: IsOverdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLeadIsOpen(t *testing.T) {
	cases := []struct {
		name string
		lead Lead
		want bool
	}{
		{"open status", Lead{Status: StatusOpen, Stage: StageNew}, true},
		{"closed won status", Lead{Status: StatusClosedWon, Stage: StageClosedWon}, false},
		{"closed lost status", Lead{Status: StatusClosedLost, Stage: StageClosedLost}, false},
		{"no status open stage", Lead{Stage: StageProposal}, true},
		{"no status terminal stage", Lead{Stage: StageClosedLost}, false},
	}

	for _, tc := range cases {
		if got := tc.lead.IsOpen(); got != tc.want {
			t.Errorf("%s: IsOpen = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHumanDueDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tomorrow := now.Add(24 * time.Hour)
	if got := HumanDueDate(&tomorrow, now); got != "Due tomorrow" {
		t.Errorf("expected Due tomorrow, got %q", got)
	}

	threeBack := now.Add(-72 * time.Hour)
	if got := HumanDueDate(&threeBack, now); got != "Overdue by 3 days" {
		t.Errorf("expected Overdue by 3 days, got %q", got)
	}

	farOut := now.Add(30 * 24 * time.Hour)
	if got := HumanDueDate(&farOut, now); got != "2025-07-15" {
		t.Errorf("expected 2025-07-15, got %q", got)
	}

	if got := HumanDueDate(nil, now); got != "No due date" {
		t.Errorf("expected No due date, got %q", got)
	}
}

func TestStagesOrder(t *testing.T) {
	stages := Stages()
	if len(stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(stages))
	}
	if stages[0] != StageNew || stages[5] != StageClosedLost {
		t.Errorf("unexpected stage order: %v", stages)
	}
}

func TestContactFullName(t *testing.T) {
	c := Contact{FirstName: "Ada", LastName: "Lovelace"}
	if got := c.FullName(); got != "Ada Lovelace" {
		t.Errorf("expected Ada Lovelace, got %q", got)
	}
}
