package entities

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseBoardingLocations(t *testing.T) {
	got := ParseBoardingLocations(" Av. Paulista, 1000 - 07:00 ", "  ", "Shopping Aricanduva")
	want := BoardingLocations{"Av. Paulista, 1000 - 07:00", "Shopping Aricanduva"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if len(ParseBoardingLocations()) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestBoardingLocations_UnmarshalJSON(t *testing.T) {
	var body struct {
		Locations BoardingLocations `json:"boardingLocations"`
	}

	if err := json.Unmarshal([]byte(`{"boardingLocations":["A"," B "]}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Locations) != 2 || body.Locations[1] != "B" {
		t.Fatalf("unexpected list: %v", body.Locations)
	}

	if err := json.Unmarshal([]byte(`{"boardingLocations":["Av. Paulista, 1000 - 07:00","Metrô Tatuapé"]}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Locations) != 2 || body.Locations[0] != "Av. Paulista, 1000 - 07:00" || body.Locations[1] != "Metrô Tatuapé" {
		t.Fatalf("array elements must be kept intact: %v", body.Locations)
	}

	if err := json.Unmarshal([]byte(`{"boardingLocations":"Rodoviária, plataforma 3"}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Locations) != 1 || body.Locations[0] != "Rodoviária, plataforma 3" {
		t.Fatalf("a single string is one location: %v", body.Locations)
	}

	err := json.Unmarshal([]byte(`{"boardingLocations":42}`), &body)
	if !errors.Is(err, ErrInvalidBoardingLocations) {
		t.Fatalf("expected ErrInvalidBoardingLocations, got %v", err)
	}
}

func TestBoardingLocations_Contains(t *testing.T) {
	locs := BoardingLocations{"Terminal Tietê"}
	if !locs.Contains("Terminal Tietê") {
		t.Fatalf("expected exact match")
	}
	if locs.Contains("terminal tietê") {
		t.Fatalf("match must be case-sensitive")
	}
	if locs.String() != "Terminal Tietê" {
		t.Fatalf("unexpected string: %q", locs.String())
	}
}

func TestTravelPackagePatch_Apply(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	p := TravelPackage{ID: "pkg-1", Name: "Maragogi", Price: 1499.99, MaxPeople: 20, BoardingLocations: BoardingLocations{"A"}, CreatedAt: created, UpdatedAt: created}

	name := "Maragogi Premium"
	max := 25
	locs := BoardingLocations{"A", "B"}
	out := TravelPackagePatch{Name: &name, MaxPeople: &max, BoardingLocations: &locs}.Apply(p, now)

	if out.Name != name || out.MaxPeople != 25 || len(out.BoardingLocations) != 2 {
		t.Fatalf("patch not applied: %+v", out)
	}
	if out.Price != 1499.99 {
		t.Fatalf("absent fields must keep stored value")
	}
	if !out.CreatedAt.Equal(created) || !out.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", out)
	}
	if !out.AcceptsBookings() {
		t.Fatalf("expected package to accept bookings")
	}
	if (TravelPackage{MaxPeople: 1}).AcceptsBookings() {
		t.Fatalf("package without boarding locations must not accept bookings")
	}
}

func TestBooking_AgeAt(t *testing.T) {
	b := Booking{BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)}
	if got := b.AgeAt(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)); got != 34 {
		t.Fatalf("expected 34, got %d", got)
	}
	if got := b.AgeAt(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)); got != 35 {
		t.Fatalf("expected 35, got %d", got)
	}
	if got := (Booking{}).AgeAt(time.Now()); got != 0 {
		t.Fatalf("expected 0 for missing birth date, got %d", got)
	}
}
