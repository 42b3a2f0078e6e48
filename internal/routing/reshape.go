package routing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDurationSeconds parses a provider duration string of the form
// "<integer>s" and returns the number of seconds. A missing suffix or a
// non-integer prefix is a data error, never a silent zero.
func ParseDurationSeconds(s string) (int64, error) {
	trimmed, ok := strings.CutSuffix(s, "s")
	if !ok {
		return 0, fmt.Errorf("%w: %q has no trailing 's'", ErrInvalidDuration, s)
	}
	secs, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return secs, nil
}

// MinutesFromSeconds converts seconds to minutes rounded to 1 decimal.
func MinutesFromSeconds(secs int64) float64 {
	return round1(float64(secs) / 60)
}

// KilometersFromMeters converts meters to kilometers rounded to 2 decimals.
func KilometersFromMeters(meters int64) float64 {
	return round2(float64(meters) / 1000)
}

// ReorderWaypoints applies the provider's optimized index array to the
// request waypoints. The array must be a full permutation of 0..n-1; the
// provider is not trusted on this, an out-of-range or duplicated index is
// rejected instead of risking an out-of-range access.
func ReorderWaypoints(waypoints []string, order []int) ([]string, error) {
	if len(order) != len(waypoints) {
		return nil, fmt.Errorf("%w: got %d indices for %d waypoints",
			ErrInvalidWaypointOrder, len(order), len(waypoints))
	}

	seen := make([]bool, len(waypoints))
	reordered := make([]string, 0, len(waypoints))
	for _, idx := range order {
		if idx < 0 || idx >= len(waypoints) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidWaypointOrder, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d repeated", ErrInvalidWaypointOrder, idx)
		}
		seen[idx] = true
		reordered = append(reordered, waypoints[idx])
	}
	return reordered, nil
}

// BuildSequence assembles the final ordered route points. Start and
// destination bracket the reordered waypoints, unchanged.
func BuildSequence(start, destination string, reordered []string) []RoutePoint {
	points := make([]RoutePoint, 0, len(reordered)+2)
	points = append(points, RoutePoint{Input: start})
	for _, wp := range reordered {
		points = append(points, RoutePoint{Input: wp})
	}
	points = append(points, RoutePoint{Input: destination})
	return points
}

// RouteLeg is one provider leg before reshaping.
type RouteLeg struct {
	DistanceMeters  int64
	DurationSeconds int64
	Start           *Coordinate
	End             *Coordinate
}

// AttachLegs pairs leg i with points i and i+1, producing per-leg details
// and back-filling point coordinates from the leg endpoints. Points are
// mutated in place. The provider must return exactly len(points)-1 legs.
func AttachLegs(points []RoutePoint, legs []RouteLeg) ([]LegDetail, error) {
	if len(legs) == 0 {
		return nil, nil
	}
	if len(legs) != len(points)-1 {
		return nil, fmt.Errorf("%w: %d legs for %d points",
			ErrInvalidWaypointOrder, len(legs), len(points))
	}

	details := make([]LegDetail, 0, len(legs))
	for i, leg := range legs {
		details = append(details, LegDetail{
			Step:        i + 1,
			From:        points[i].Input,
			To:          points[i+1].Input,
			DistanceKM:  KilometersFromMeters(leg.DistanceMeters),
			TimeMinutes: MinutesFromSeconds(leg.DurationSeconds),
		})
		if leg.Start != nil {
			points[i].Coord = leg.Start
		}
		if leg.End != nil {
			points[i+1].Coord = leg.End
		}
	}
	return details, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
