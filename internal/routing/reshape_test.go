package routing

import (
	"errors"
	"testing"
)

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole minutes", input: "600s", want: 600},
		{name: "two minutes", input: "120s", want: 120},
		{name: "sub-minute", input: "45s", want: 45},
		{name: "zero", input: "0s", want: 0},
		{name: "missing suffix", input: "600", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bare suffix", input: "s", wantErr: true},
		{name: "fractional", input: "12.5s", wantErr: true},
		{name: "non-numeric", input: "abcs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationSeconds(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %d", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidDuration) {
					t.Errorf("expected ErrInvalidDuration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDurationSeconds(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesFromSeconds(t *testing.T) {
	tests := []struct {
		secs int64
		want float64
	}{
		{120, 2.0},
		{45, 0.8}, // 0.75 rounds to 1 decimal
		{600, 10.0},
		{0, 0.0},
		{90, 1.5},
	}

	for _, tt := range tests {
		if got := MinutesFromSeconds(tt.secs); got != tt.want {
			t.Errorf("MinutesFromSeconds(%d) = %v, want %v", tt.secs, got, tt.want)
		}
	}
}

func TestKilometersFromMeters(t *testing.T) {
	tests := []struct {
		meters int64
		want   float64
	}{
		{3000, 3.0},
		{1234, 1.23},
		{1236, 1.24},
		{0, 0.0},
	}

	for _, tt := range tests {
		if got := KilometersFromMeters(tt.meters); got != tt.want {
			t.Errorf("KilometersFromMeters(%d) = %v, want %v", tt.meters, got, tt.want)
		}
	}
}

func TestReorderWaypoints(t *testing.T) {
	t.Run("applies permutation", func(t *testing.T) {
		got, err := ReorderWaypoints([]string{"B", "C"}, []int{1, 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0] != "C" || got[1] != "B" {
			t.Errorf("got %v, want [C B]", got)
		}
	})

	t.Run("empty waypoints", func(t *testing.T) {
		got, err := ReorderWaypoints(nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})

	t.Run("identity", func(t *testing.T) {
		got, err := ReorderWaypoints([]string{"B", "C", "D"}, []int{0, 1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0] != "B" || got[1] != "C" || got[2] != "D" {
			t.Errorf("got %v, want [B C D]", got)
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		_, err := ReorderWaypoints([]string{"B", "C"}, []int{0, 2})
		if !errors.Is(err, ErrInvalidWaypointOrder) {
			t.Errorf("expected ErrInvalidWaypointOrder, got %v", err)
		}
	})

	t.Run("negative index", func(t *testing.T) {
		_, err := ReorderWaypoints([]string{"B", "C"}, []int{-1, 0})
		if !errors.Is(err, ErrInvalidWaypointOrder) {
			t.Errorf("expected ErrInvalidWaypointOrder, got %v", err)
		}
	})

	t.Run("duplicate index", func(t *testing.T) {
		_, err := ReorderWaypoints([]string{"B", "C"}, []int{1, 1})
		if !errors.Is(err, ErrInvalidWaypointOrder) {
			t.Errorf("expected ErrInvalidWaypointOrder, got %v", err)
		}
	})

	t.Run("short index array", func(t *testing.T) {
		_, err := ReorderWaypoints([]string{"B", "C"}, []int{0})
		if !errors.Is(err, ErrInvalidWaypointOrder) {
			t.Errorf("expected ErrInvalidWaypointOrder, got %v", err)
		}
	})
}

func TestBuildSequence(t *testing.T) {
	points := BuildSequence("A", "D", []string{"C", "B"})

	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}
	if points[0].Input != "A" {
		t.Errorf("first point must be the start, got %q", points[0].Input)
	}
	if points[3].Input != "D" {
		t.Errorf("last point must be the destination, got %q", points[3].Input)
	}
	if points[1].Input != "C" || points[2].Input != "B" {
		t.Errorf("interior points out of order: %v", points)
	}
	for i, p := range points {
		if p.Coord != nil {
			t.Errorf("point %d has coordinates before legs are attached", i)
		}
	}
}

func TestAttachLegs(t *testing.T) {
	t.Run("pairs legs with consecutive points", func(t *testing.T) {
		points := BuildSequence("A", "C", []string{"B"})
		legs := []RouteLeg{
			{DistanceMeters: 1000, DurationSeconds: 300, Start: &Coordinate{Lat: 1, Lng: 101}, End: &Coordinate{Lat: 2, Lng: 102}},
			{DistanceMeters: 2000, DurationSeconds: 300, Start: &Coordinate{Lat: 2, Lng: 102}, End: &Coordinate{Lat: 3, Lng: 103}},
		}

		details, err := AttachLegs(points, legs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(details) != 2 {
			t.Fatalf("expected 2 legs, got %d", len(details))
		}

		first := details[0]
		if first.Step != 1 || first.From != "A" || first.To != "B" {
			t.Errorf("unexpected first leg: %+v", first)
		}
		if first.DistanceKM != 1.0 || first.TimeMinutes != 5.0 {
			t.Errorf("unexpected first leg conversion: %+v", first)
		}

		second := details[1]
		if second.Step != 2 || second.From != "B" || second.To != "C" {
			t.Errorf("unexpected second leg: %+v", second)
		}

		// Coordinates are back-filled from leg endpoints.
		if points[0].Coord == nil || points[0].Coord.Lat != 1 {
			t.Errorf("start coord not back-filled: %+v", points[0])
		}
		if points[1].Coord == nil || points[1].Coord.Lat != 2 {
			t.Errorf("middle coord not back-filled: %+v", points[1])
		}
		if points[2].Coord == nil || points[2].Coord.Lat != 3 {
			t.Errorf("end coord not back-filled: %+v", points[2])
		}
	})

	t.Run("no legs yields no details", func(t *testing.T) {
		points := BuildSequence("A", "B", nil)
		details, err := AttachLegs(points, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details != nil {
			t.Errorf("expected nil details, got %v", details)
		}
		if points[0].Coord != nil || points[1].Coord != nil {
			t.Error("coords must stay nil without legs")
		}
	})

	t.Run("leg count mismatch", func(t *testing.T) {
		points := BuildSequence("A", "C", []string{"B"})
		_, err := AttachLegs(points, []RouteLeg{{DistanceMeters: 1000, DurationSeconds: 60}})
		if !errors.Is(err, ErrInvalidWaypointOrder) {
			t.Errorf("expected ErrInvalidWaypointOrder, got %v", err)
		}
	})
}

func TestRouteResult_Sequence(t *testing.T) {
	result := RouteResult{Points: BuildSequence("A", "D", []string{"C", "B"})}
	got := result.Sequence()
	want := []string{"A", "C", "B", "D"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sequence[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
