package services

import (
	"reflect"
	"testing"
)

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     []string
		wantErr  bool
	}{
		{
			name:     "one night",
			checkIn:  "2024-01-01",
			checkOut: "2024-01-02",
			want:     []string{"2024-01-01"},
		},
		{
			name:     "four nights, checkout day excluded",
			checkIn:  "2024-01-01",
			checkOut: "2024-01-05",
			want:     []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
		},
		{
			name:     "month boundary",
			checkIn:  "2024-01-31",
			checkOut: "2024-02-02",
			want:     []string{"2024-01-31", "2024-02-01"},
		},
		{
			name:     "zero-length range",
			checkIn:  "2024-01-01",
			checkOut: "2024-01-01",
			wantErr:  true,
		},
		{
			name:     "inverted range",
			checkIn:  "2024-01-05",
			checkOut: "2024-01-01",
			wantErr:  true,
		},
		{
			name:     "bad check-in format",
			checkIn:  "01/01/2024",
			checkOut: "2024-01-05",
			wantErr:  true,
		},
		{
			name:     "bad check-out format",
			checkIn:  "2024-01-01",
			checkOut: "not-a-date",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRange(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got dates %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeDates(t *testing.T) {
	got, err := NormalizeDates([]string{"2024-03-02", "2024-03-01", "2024-03-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-03-01", "2024-03-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := NormalizeDates(nil); err == nil {
		t.Error("expected error for empty set")
	}
	if _, err := NormalizeDates([]string{"2024-13-40"}); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 string
		want           bool
	}{
		{"identical", "2024-01-01", "2024-01-05", "2024-01-01", "2024-01-05", true},
		{"partial overlap", "2024-01-01", "2024-01-05", "2024-01-04", "2024-01-06", true},
		{"contained", "2024-01-01", "2024-01-10", "2024-01-03", "2024-01-04", true},
		{"adjacent, checkout day reused", "2024-01-01", "2024-01-05", "2024-01-05", "2024-01-08", false},
		{"disjoint", "2024-01-01", "2024-01-05", "2024-02-01", "2024-02-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			// overlap is symmetric
			if got := RangesOverlap(tt.b1, tt.b2, tt.a1, tt.a2); got != tt.want {
				t.Errorf("expected symmetric %v, got %v", tt.want, got)
			}
		})
	}
}
