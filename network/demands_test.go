package network

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDemandSet_Set(t *testing.T) {
	ds := NewDemandSet()

	if err := ds.Set("a", "b", 10, 100); err != nil {
		t.Fatalf("Set(): want no error, got %s", err)
	}
	if err := ds.Set("b", "a", 20, 200); err != nil {
		t.Fatalf("Set(): want no error, got %s", err)
	}
	if err := ds.Set("a", "b", 30, 300); err != nil { // overwrite
		t.Fatalf("Set(): want no error, got %s", err)
	}

	want := []Demand{
		demand("a", "b", 30, 300),
		demand("b", "a", 20, 200),
	}
	if diff := cmp.Diff(want, ds.All()); diff != "" {
		t.Errorf("All(): mismatch (-want +got):\n%s", diff)
	}
}

func TestDemandSet_Set_invalid(t *testing.T) {
	testCases := []struct {
		desc      string
		traffic   float64
		packet    float64
		wantField string
	}{
		{"negative traffic", -1, 100, "traffic"},
		{"negative packet size", 1, -100, "packet_size"},
		{"NaN traffic", math.NaN(), 100, "traffic"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ds := newDemands(demand("a", "b", 5, 50))

			err := ds.Set("a", "b", tc.traffic, tc.packet)

			if !errors.Is(err, ErrInvalidDemand) {
				t.Fatalf("Set(): want ErrInvalidDemand, got %v", err)
			}
			var de *DemandError
			if !errors.As(err, &de) || de.Field != tc.wantField {
				t.Errorf("Set(): want *DemandError on field %q, got %v", tc.wantField, err)
			}
			want := []Demand{demand("a", "b", 5, 50)}
			if diff := cmp.Diff(want, ds.All()); diff != "" {
				t.Errorf("Set(): demand set changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDemandSet_zeroValue(t *testing.T) {
	var ds DemandSet

	if err := ds.Set("a", "b", 1, 1); err != nil {
		t.Fatalf("Set(): want no error, got %s", err)
	}
	if got := ds.Len(); got != 1 {
		t.Errorf("Len(): want 1, got %d", got)
	}
}

func TestDemandSet_Get(t *testing.T) {
	ds := newDemands(demand("a", "b", 10, 100))

	if got := ds.Get("a", "b"); got != demand("a", "b", 10, 100) {
		t.Errorf("Get(a, b): want the stored demand, got %+v", got)
	}
	if got := ds.Get("b", "a"); got != demand("b", "a", 0, 0) {
		t.Errorf("Get(b, a): want a zero demand, got %+v", got)
	}
	if _, ok := ds.Lookup("b", "a"); ok {
		t.Errorf("Lookup(b, a): want not found, got ok")
	}
}

func TestDemandSet_Remove(t *testing.T) {
	ds := newDemands(
		demand("a", "b", 1, 1),
		demand("b", "c", 2, 2),
		demand("c", "a", 3, 3),
	)

	if !ds.Remove("b", "c") {
		t.Fatalf("Remove(b, c): want true, got false")
	}
	if ds.Remove("b", "c") {
		t.Errorf("Remove(b, c) twice: want false, got true")
	}
	if err := ds.Set("c", "a", 4, 4); err != nil {
		t.Fatal(err)
	}

	want := []Demand{demand("a", "b", 1, 1), demand("c", "a", 4, 4)}
	if diff := cmp.Diff(want, ds.All()); diff != "" {
		t.Errorf("All(): mismatch (-want +got):\n%s", diff)
	}
}

func TestDemandSet_Traffic(t *testing.T) {
	ds := newDemands(
		demand("a", "b", 10, 0),
		demand("a", "c", 15, 0),
		demand("b", "a", 7, 0),
		demand("ghost", "a", 100, 0),
	)

	if got := ds.TotalTraffic(); got != 132 {
		t.Errorf("TotalTraffic(): want 132, got %v", got)
	}
	if got := ds.OutboundTraffic("a"); got != 25 {
		t.Errorf("OutboundTraffic(a): want 25, got %v", got)
	}
	if got := ds.OutboundTraffic("c"); got != 0 {
		t.Errorf("OutboundTraffic(c): want 0, got %v", got)
	}
}
