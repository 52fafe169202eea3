package repository

import (
	"testing"
	"time"

	"travel_backoffice/internal/domain/entities"
)

func TestTravelPackageItemRoundTrip(t *testing.T) {
	now := time.Date(2025, 2, 3, 4, 5, 6, 7, time.UTC)
	p := entities.TravelPackage{
		ID:                "pkg-1",
		Name:              "Maragogi",
		Price:             1499.9,
		MaxPeople:         40,
		BoardingLocations: entities.BoardingLocations{"Tietê", "Tatuapé"},
		TravelMonth:       "Março",
		TravelDate:        "15/03/2025",
		BookedCount:       7,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	it := toTravelPackageItem(p)
	if it.TravelMonthKey != "março" {
		t.Fatalf("expected lower-cased month key, got %q", it.TravelMonthKey)
	}
	if it.CreatedAt != "2025-02-03T04:05:06.000000007Z" {
		t.Fatalf("unexpected created_at: %s", it.CreatedAt)
	}

	back := fromTravelPackageItem(it)
	if back.ID != p.ID || back.BookedCount != 7 || len(back.BoardingLocations) != 2 || !back.CreatedAt.Equal(now) {
		t.Fatalf("unexpected round trip: %+v", back)
	}
}

func TestTravelPackageItemRoundTrip_KeepsLocationsWithCommas(t *testing.T) {
	locs := entities.BoardingLocations{"Av. Paulista, 1000 - 07:00", "Metrô Tatuapé"}

	back := fromTravelPackageItem(toTravelPackageItem(entities.TravelPackage{ID: "pkg-1", BoardingLocations: locs}))
	if len(back.BoardingLocations) != len(locs) {
		t.Fatalf("expected %v, got %v", locs, back.BoardingLocations)
	}
	for i := range locs {
		if back.BoardingLocations[i] != locs[i] {
			t.Fatalf("expected %v, got %v", locs, back.BoardingLocations)
		}
	}
	if !back.BoardingLocations.Contains("Av. Paulista, 1000 - 07:00") {
		t.Fatalf("stored location must match exactly after a read")
	}
}

func TestTravelPackageItem_NilLocationsStoredAsEmptyList(t *testing.T) {
	it := toTravelPackageItem(entities.TravelPackage{ID: "pkg-1"})
	if it.BoardingLocations == nil || len(it.BoardingLocations) != 0 {
		t.Fatalf("expected empty list, got %#v", it.BoardingLocations)
	}
}

func TestBookingItemRoundTrip(t *testing.T) {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	b := entities.Booking{ID: "b-1", TravelPackageID: "pkg-1", BirthDate: birth, City: "Santos"}

	back := fromBookingItem(toBookingItem(b))
	if back.TravelPackageID != "pkg-1" || !back.BirthDate.Equal(birth) || back.City != "Santos" {
		t.Fatalf("unexpected round trip: %+v", back)
	}
	if !back.CreatedAt.IsZero() {
		t.Fatalf("zero timestamps must stay zero")
	}
}
