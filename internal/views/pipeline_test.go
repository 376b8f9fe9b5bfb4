package views

import (
	"fmt"
	"strings"
	"testing"

	"havahills/backoffice/internal/models/entities"
)

func makeProperty(id, block, lot, status string) entities.Property {
	return entities.Property{
		ID:               id,
		Block:            block,
		Lot:              lot,
		Status:           status,
		StatusKey:        strings.ToLower(strings.TrimSpace(status)),
		SourceCollection: "Havahills Estate",
	}
}

func TestApplyProperties_StatusFilterCaseInsensitive(t *testing.T) {
	list := []entities.Property{
		makeProperty("1", "1", "1", "SOLD"),
		makeProperty("2", "1", "2", "Sold"),
		makeProperty("3", "1", "3", "Available"),
	}
	// StatusKey is computed at construction from trimmed input
	list[0].StatusKey = "sold"
	list[1].StatusKey = "sold"
	list[2].StatusKey = "available"

	q := NewViewQuery(10).WithStatus("sold")
	res := ApplyProperties(list, q)

	if res.TotalCount != 2 {
		t.Fatalf("expected 2 sold rows, got %d", res.TotalCount)
	}
}

func TestApplyProperties_SortIsStableAndNumeric(t *testing.T) {
	list := []entities.Property{
		makeProperty("a", "10", "2", "Available"),
		makeProperty("b", "2", "10", "Available"),
		makeProperty("c", "2", "10", "Available"), // same keys as b
		makeProperty("d", "2", "9", "Available"),
	}

	res := ApplyProperties(list, NewViewQuery(10))

	got := make([]string, 0, len(res.Rows))
	for _, p := range res.Rows {
		got = append(got, p.ID)
	}

	// Numeric order: block 2 before block 10; lot 9 before lot 10.
	// b before c: equal keys keep input order.
	want := []string{"d", "b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestApplyProperties_NonNumericBlockSortsAsZero(t *testing.T) {
	list := []entities.Property{
		makeProperty("a", "3", "1", "Available"),
		makeProperty("b", "Phase A", "1", "Available"),
	}

	res := ApplyProperties(list, NewViewQuery(10))

	if res.Rows[0].ID != "b" {
		t.Errorf("non-numeric block should parse to 0 and sort first, got %s", res.Rows[0].ID)
	}
}

func TestApplyProperties_PaginationInvariants(t *testing.T) {
	var list []entities.Property
	for i := 0; i < 25; i++ {
		list = append(list, makeProperty(fmt.Sprintf("%d", i), "1", fmt.Sprintf("%d", i), "Available"))
	}

	q := NewViewQuery(10)

	total := 0
	for page := 1; page <= 3; page++ {
		res := ApplyProperties(list, q.WithPage(page))
		if len(res.Rows) > q.PageSize {
			t.Fatalf("page %d exceeds page size: %d rows", page, len(res.Rows))
		}
		if res.TotalPages != 3 {
			t.Fatalf("expected 3 pages, got %d", res.TotalPages)
		}
		total += len(res.Rows)
	}

	if total != 25 {
		t.Fatalf("rows across pages must sum to total count, got %d", total)
	}

	// Scenario from the batch-of-25 case: page 1 has 10 rows, page 3 has 5
	if res := ApplyProperties(list, q.WithPage(1)); len(res.Rows) != 10 {
		t.Errorf("page 1: expected 10 rows, got %d", len(res.Rows))
	}
	if res := ApplyProperties(list, q.WithPage(3)); len(res.Rows) != 5 {
		t.Errorf("page 3: expected 5 rows, got %d", len(res.Rows))
	}
}

func TestViewQuery_FilterChangesResetPage(t *testing.T) {
	q := NewViewQuery(10).WithPage(4)

	if got := q.WithSearch("block 2").Page; got != 1 {
		t.Errorf("search change should reset page, got %d", got)
	}
	if got := q.WithStatus("sold").Page; got != 1 {
		t.Errorf("status change should reset page, got %d", got)
	}
	if got := q.WithProject("Havahills Estate").Page; got != 1 {
		t.Errorf("project change should reset page, got %d", got)
	}
}

func TestApplyProperties_PageClampedToLastPage(t *testing.T) {
	var list []entities.Property
	for i := 0; i < 12; i++ {
		list = append(list, makeProperty(fmt.Sprintf("%d", i), "1", fmt.Sprintf("%d", i), "Available"))
	}

	res := ApplyProperties(list, NewViewQuery(10).WithPage(9))

	if res.Page != 2 {
		t.Errorf("expected page clamped to 2, got %d", res.Page)
	}
	if len(res.Rows) != 2 {
		t.Errorf("expected the 2 overflow rows, got %d", len(res.Rows))
	}
}

func TestApplyProperties_EmptySetHasZeroPages(t *testing.T) {
	res := ApplyProperties(nil, NewViewQuery(10))

	if res.TotalPages != 0 || res.TotalCount != 0 || len(res.Rows) != 0 {
		t.Errorf("empty input must produce an empty zero-page result, got %+v", res)
	}

	// a stale high page number does not leak through on an empty set
	if res := ApplyProperties(nil, NewViewQuery(10).WithPage(5)); res.Page != 1 {
		t.Errorf("empty set should clamp the page to 1, got %d", res.Page)
	}
}

func TestApplyProperties_UnfilteredReturnsWholeBatch(t *testing.T) {
	list := []entities.Property{
		makeProperty("a", "2", "1", "Available"),
		makeProperty("b", "1", "1", "Sold"),
		makeProperty("c", "1", "2", "Reserved"),
	}
	list[1].StatusKey = "sold"
	list[2].StatusKey = "reserved"

	res := ApplyProperties(list, NewViewQuery(10))

	if res.TotalCount != 3 {
		t.Fatalf("no filters: expected the full batch, got %d", res.TotalCount)
	}
	// Block/lot order after sort
	if res.Rows[0].ID != "b" || res.Rows[1].ID != "c" || res.Rows[2].ID != "a" {
		t.Errorf("expected block/lot order b,c,a, got %s,%s,%s",
			res.Rows[0].ID, res.Rows[1].ID, res.Rows[2].ID)
	}
}

func TestApplyClients_ProjectAndSearch(t *testing.T) {
	list := []entities.Client{
		{ID: "1", Name: "Juan Dela Cruz", Properties: []entities.OwnedLot{{Project: "Havahills Estate", Block: "1", Lot: "2"}}},
		{ID: "2", Name: "Maria Santos", Properties: []entities.OwnedLot{{Project: "Living Water Subdivision", Block: "3", Lot: "4"}}},
		{ID: "3", Name: "Jose Rizal", Properties: []entities.OwnedLot{entities.PlaceholderLot()}},
	}

	res := ApplyClients(list, NewViewQuery(10).WithProject("Havahills Estate"))
	if res.TotalCount != 1 || res.Rows[0].ID != "1" {
		t.Fatalf("expected only the Havahills client, got %+v", res)
	}

	res = ApplyClients(list, NewViewQuery(10).WithSearch("maria"))
	if res.TotalCount != 1 || res.Rows[0].ID != "2" {
		t.Fatalf("expected case-insensitive name search to match, got %+v", res)
	}
}
