package network

import (
	"testing"
)

func TestLinkDelay(t *testing.T) {
	testCases := []struct {
		desc          string
		flow          float64
		packet        float64
		capacity      int
		wantSaturated bool
		wantValue     float64
	}{
		{"flow equals capacity", 100, 10, 100, true, 0},
		{"flow above capacity", 150, 10, 100, true, 0},
		{"one unit below capacity", 99, 10, 100, false, 10},
		{"no capacity", 0, 10, 0, true, 0},
		{"idle", 0, 1, 4, false, 0.25},
		{"zero packet", 50, 0, 100, false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := LinkDelay(tc.flow, tc.packet, tc.capacity)

			if got.IsSaturated() != tc.wantSaturated {
				t.Errorf("IsSaturated(): want %t, got %t", tc.wantSaturated, got.IsSaturated())
			}
			v, finite := got.Value()
			if finite == tc.wantSaturated {
				t.Errorf("Value(): want finite=%t, got %t", !tc.wantSaturated, finite)
			}
			if finite && v != tc.wantValue {
				t.Errorf("Value(): want %v, got %v", tc.wantValue, v)
			}
		})
	}
}

func TestDelay_String(t *testing.T) {
	if got := Saturated.String(); got != "∞" {
		t.Errorf("Saturated.String(): want ∞, got %s", got)
	}
	if got := FiniteDelay(10).String(); got != "10.0000" {
		t.Errorf("FiniteDelay(10).String(): want 10.0000, got %s", got)
	}
}

func TestAverageDelay(t *testing.T) {
	testCases := []struct {
		desc   string
		delays []Delay
		want   float64
		wantOK bool
	}{
		{
			desc:   "no delay",
			wantOK: false,
		},
		{
			desc:   "only saturated links",
			delays: []Delay{Saturated, Saturated},
			wantOK: false,
		},
		{
			desc:   "zero average is finite",
			delays: []Delay{FiniteDelay(0), FiniteDelay(0)},
			want:   0,
			wantOK: true,
		},
		{
			desc:   "saturated links are excluded",
			delays: []Delay{FiniteDelay(1), Saturated, FiniteDelay(3)},
			want:   2,
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, ok := AverageDelay(tc.delays)

			if ok != tc.wantOK || got != tc.want {
				t.Errorf("AverageDelay(): want (%v, %t), got (%v, %t)", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}
