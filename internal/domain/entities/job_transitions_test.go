package entities

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from JobStatus
		to   JobStatus
		want bool
	}{
		{name: "open to assigned", from: JobStatusOpen, to: JobStatusAssigned, want: true},
		{name: "open to cancelled", from: JobStatusOpen, to: JobStatusCancelled, want: true},
		{name: "open skips to in_progress", from: JobStatusOpen, to: JobStatusInProgress, want: false},
		{name: "assigned to in_progress", from: JobStatusAssigned, to: JobStatusInProgress, want: true},
		{name: "assigned to cancelled", from: JobStatusAssigned, to: JobStatusCancelled, want: true},
		{name: "assigned back to open", from: JobStatusAssigned, to: JobStatusOpen, want: false},
		{name: "in_progress to completed", from: JobStatusInProgress, to: JobStatusCompleted, want: true},
		{name: "in_progress cannot cancel", from: JobStatusInProgress, to: JobStatusCancelled, want: false},
		{name: "completed is final", from: JobStatusCompleted, to: JobStatusCancelled, want: false},
		{name: "cancelled is final", from: JobStatusCancelled, to: JobStatusOpen, want: false},
		{name: "unknown status moves nowhere", from: JobStatus("pending"), to: JobStatusOpen, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []JobStatus{JobStatusCompleted, JobStatusCancelled}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Fatalf("IsTerminal(%s) = false, want true", s)
		}
	}
	live := []JobStatus{JobStatusOpen, JobStatusAssigned, JobStatusInProgress}
	for _, s := range live {
		if IsTerminal(s) {
			t.Fatalf("IsTerminal(%s) = true, want false", s)
		}
	}
}
