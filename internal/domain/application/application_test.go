package application

import "testing"

func TestParseStatusNormalizes(t *testing.T) {
	status, err := ParseStatus("  Accepted ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if status != StatusAccepted {
		t.Fatalf("expected accepted, got %s", status)
	}
	if _, err := ParseStatus("shortlisted"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestTransitionTable(t *testing.T) {
	if !IsTransitionAllowed(StatusApplied, StatusAccepted) {
		t.Fatal("applied -> accepted must be allowed")
	}
	if !IsTransitionAllowed(StatusApplied, StatusRejected) {
		t.Fatal("applied -> rejected must be allowed")
	}
	if IsTransitionAllowed(StatusAccepted, StatusRejected) {
		t.Fatal("accepted is terminal")
	}
	if IsTransitionAllowed(StatusRejected, StatusApplied) {
		t.Fatal("rejected is terminal")
	}
	if IsTerminal(StatusApplied) {
		t.Fatal("applied is not terminal")
	}
	if !IsTerminal(StatusAccepted) || !IsTerminal(StatusRejected) {
		t.Fatal("accepted and rejected are terminal")
	}
}
