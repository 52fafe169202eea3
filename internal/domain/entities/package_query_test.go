package entities

import (
	"testing"
	"time"
)

func TestParseTravelDate(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{in: "15/03/2025", ok: true, want: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: " 01/12/2026 ", ok: true, want: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)},
		{in: "", ok: false},
		{in: "31/02/2025", ok: false},
		{in: "2025-03-15", ok: false},
		{in: "5/3/2025", ok: false},
		{in: "em breve", ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseTravelDate(tc.in)
		if ok != tc.ok {
			t.Fatalf("%q: expected ok=%v, got %v", tc.in, tc.ok, ok)
		}
		if ok && !got.Equal(tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{page: 1, limit: 10, wantPage: 1, wantLimit: 10},
		{page: 0, limit: 10, wantPage: 1, wantLimit: 10},
		{page: -3, limit: 10, wantPage: 1, wantLimit: 10},
		{page: 2, limit: 500, wantPage: 2, wantLimit: 100},
		{page: 2, limit: 0, wantPage: 2, wantLimit: 10},
		{page: 2, limit: -5, wantPage: 2, wantLimit: 10},
		{page: 3, limit: 100, wantPage: 3, wantLimit: 100},
	}
	for _, tc := range cases {
		p, l := NormalizePage(tc.page, tc.limit)
		if p != tc.wantPage || l != tc.wantLimit {
			t.Fatalf("NormalizePage(%d,%d) = (%d,%d), want (%d,%d)", tc.page, tc.limit, p, l, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestTotalPagesAndPaginate(t *testing.T) {
	if got := TotalPages(25, 10); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := TotalPages(0, 10); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
	if got := TotalPages(20, 10); got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}

	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}
	if got := Paginate(items, 3, 10); len(got) != 5 || got[0] != 20 {
		t.Fatalf("unexpected page 3: %v", got)
	}
	if got := Paginate(items, 4, 10); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil page 4, got %v", got)
	}

	meta := NewPaginationMeta(4, 10, 25, 3)
	if meta.HasNextPage || !meta.HasPreviousPage {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	meta = NewPaginationMeta(1, 10, 25, 3)
	if !meta.HasNextPage || meta.HasPreviousPage {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestPackageQuery_Normalized(t *testing.T) {
	q := PackageQuery{Month: " Janeiro/2026 ", Page: 0, Limit: 500, SortBy: "bogus", SortOrder: "DESC"}.Normalized()
	if q.Month != "janeiro" || q.Page != 1 || q.Limit != 100 || q.SortBy != SortByTravelDate || q.SortOrder != SortDesc {
		t.Fatalf("unexpected normalized query: %+v", q)
	}
	if q.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", q.Offset())
	}
	q.Page = 3
	if q.Offset() != 200 {
		t.Fatalf("expected offset 200, got %d", q.Offset())
	}
}

func TestMatchesMonth(t *testing.T) {
	if !MatchesMonth("Março", "março") {
		t.Fatalf("expected case-insensitive match")
	}
	if !MatchesMonth("Janeiro/2026", "JANEIRO") {
		t.Fatalf("expected prefix match on versioned month")
	}
	if !MatchesMonth("Abril", "") {
		t.Fatalf("empty filter must match everything")
	}
	if MatchesMonth("Abril", "Maio") {
		t.Fatalf("unexpected match")
	}
}

func TestSortTravelPackages_TravelDate(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	build := func() []TravelPackage {
		return []TravelPackage{
			{ID: "undated-new", TravelDate: "", CreatedAt: base.Add(3 * time.Hour)},
			{ID: "mar", TravelDate: "15/03/2025", CreatedAt: base},
			{ID: "bad", TravelDate: "31/02/2025", CreatedAt: base.Add(1 * time.Hour)},
			{ID: "jan", TravelDate: "10/01/2025", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "dec", TravelDate: "20/12/2024", CreatedAt: base.Add(4 * time.Hour)},
		}
	}

	asc := build()
	SortTravelPackages(asc, SortByTravelDate, SortAsc)
	assertOrder(t, asc, "dec", "jan", "mar", "bad", "undated-new")

	desc := build()
	SortTravelPackages(desc, SortByTravelDate, SortDesc)
	assertOrder(t, desc, "mar", "jan", "dec", "bad", "undated-new")
}

func TestSortTravelPackages_OtherFields(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pkgs := []TravelPackage{
		{ID: "b", Name: "Bonito", Price: 900, CreatedAt: base.Add(time.Hour)},
		{ID: "a", Name: "Arraial", Price: 1500, CreatedAt: base},
		{ID: "c", Name: "Campos", Price: 900, CreatedAt: base.Add(2 * time.Hour)},
	}

	SortTravelPackages(pkgs, SortByName, SortAsc)
	assertOrder(t, pkgs, "a", "b", "c")

	SortTravelPackages(pkgs, SortByPrice, SortDesc)
	assertOrder(t, pkgs, "a", "b", "c")

	SortTravelPackages(pkgs, SortByPrice, SortAsc)
	assertOrder(t, pkgs, "b", "c", "a")

	SortTravelPackages(pkgs, SortByCreatedAt, SortDesc)
	assertOrder(t, pkgs, "c", "b", "a")
}

func TestParseSortFieldAndOrder(t *testing.T) {
	if ParseSortField("") != SortByTravelDate || ParseSortField("price") != SortByPrice || ParseSortField("created_at") != SortByCreatedAt || ParseSortField("name") != SortByName {
		t.Fatalf("unexpected sort field parsing")
	}
	if ParseSortOrder("desc") != SortDesc || ParseSortOrder("") != SortAsc || ParseSortOrder("sideways") != SortAsc {
		t.Fatalf("unexpected sort order parsing")
	}
}

func assertOrder(t *testing.T, pkgs []TravelPackage, ids ...string) {
	t.Helper()
	if len(pkgs) != len(ids) {
		t.Fatalf("expected %d packages, got %d", len(ids), len(pkgs))
	}
	for i, id := range ids {
		if pkgs[i].ID != id {
			got := make([]string, len(pkgs))
			for j, p := range pkgs {
				got[j] = p.ID
			}
			t.Fatalf("expected order %v, got %v", ids, got)
		}
	}
}
