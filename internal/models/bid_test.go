package models

import "testing"

func TestParseBidResponse(t *testing.T) {
	for _, valid := range []string{"Pending", "Approved", "Rejected"} {
		status, ok := ParseBidResponse(valid)
		if !ok {
			t.Fatalf("expected %q to parse", valid)
		}
		if string(status) != valid {
			t.Fatalf("expected %q, got %q", valid, status)
		}
	}

	for _, invalid := range []string{"", "approved", "PENDING", "Completed", "Paused"} {
		if _, ok := ParseBidResponse(invalid); ok {
			t.Fatalf("expected %q to be rejected", invalid)
		}
	}
}
