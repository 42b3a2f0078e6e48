package geocode

import "testing"

func TestResolve_ParsesLatLngPair(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLng float64
	}{
		{name: "plain pair", input: "1.30,103.80", wantLat: 1.30, wantLng: 103.80},
		{name: "with spaces", input: " 3.1390 , 101.6869 ", wantLat: 3.1390, wantLng: 101.6869},
		{name: "negative values", input: "-6.2,106.8", wantLat: -6.2, wantLng: 106.8},
		{name: "integers", input: "4,102", wantLat: 4, wantLng: 102},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.input)
			if got.Lat != tt.wantLat || got.Lng != tt.wantLng {
				t.Errorf("Resolve(%q) = %+v, want {%v %v}", tt.input, got, tt.wantLat, tt.wantLng)
			}
		})
	}
}

func TestResolve_FabricatesForNames(t *testing.T) {
	inputs := []string{
		"KLCC",
		"Merdeka Square",
		"Batu Caves",
		"12.5,abc", // unparseable pair falls through to fabrication
		"12.5",     // no comma
	}

	for _, input := range inputs {
		got := Resolve(input)
		if got.Lat < 1.0 || got.Lat >= 10.0 {
			t.Errorf("Resolve(%q).Lat = %v, want [1.0, 10.0)", input, got.Lat)
		}
		if got.Lng < 101.0 || got.Lng >= 119.0 {
			t.Errorf("Resolve(%q).Lng = %v, want [101.0, 119.0)", input, got.Lng)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first := Resolve("KLCC")
	for i := 0; i < 10; i++ {
		if got := Resolve("KLCC"); got != first {
			t.Fatalf("Resolve is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestResolve_DistinctInputsDiffer(t *testing.T) {
	a := Resolve("KLCC")
	b := Resolve("Merdeka Square")
	if a == b {
		t.Errorf("distinct inputs produced the same coordinate: %+v", a)
	}
}
