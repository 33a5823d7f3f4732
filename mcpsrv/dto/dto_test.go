package dto

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/qyinm/bites/gallery"
	"github.com/qyinm/bites/types"
)

func TestDTOJSONMarshal(t *testing.T) {
	item := types.NewItem(7, "Decadent Dessert", types.Desserts, 4.8, "7.jpg", "Pure bliss")

	b, err := json.Marshal(FromItemDetail(item, true))
	if err != nil {
		t.Fatalf("marshal item detail dto: %v", err)
	}
	if _, err := json.Marshal(FromStats(gallery.Stats{Visible: 1, Total: 16, AverageRating: 4.8125})); err != nil {
		t.Fatalf("marshal stats dto: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal item detail dto: %v", err)
	}

	if got["id"] != float64(7) {
		t.Fatalf("unexpected id: %v", got["id"])
	}
	if got["category"] != "desserts" {
		t.Fatalf("unexpected category: %v", got["category"])
	}
	if got["liked"] != true {
		t.Fatalf("unexpected liked: %v", got["liked"])
	}
	if got["description"] != "Pure bliss" {
		t.Fatalf("unexpected description: %v", got["description"])
	}
}

func TestFromStatsRoundsRating(t *testing.T) {
	s := FromStats(gallery.Stats{Visible: 16, Liked: 2, Total: 16, AverageRating: 4.8125})
	if s.AverageRating != 4.81 {
		t.Fatalf("unexpected average rating: %v", s.AverageRating)
	}
	if s.Visible != 16 || s.Liked != 2 || s.Total != 16 {
		t.Fatalf("unexpected counters: %+v", s)
	}
}

func TestFromCategoryCounts(t *testing.T) {
	got := FromCategoryCounts(map[types.Category]int{types.All: 3, types.Drinks: 3})
	if len(got) != len(types.Categories) {
		t.Fatalf("unexpected category count: %d", len(got))
	}
	want := []Category{
		{Name: "all", Label: "All", Count: 3},
		{Name: "desserts", Label: "Desserts", Count: 0},
		{Name: "drinks", Label: "Drinks", Count: 3},
		{Name: "food", Label: "Food", Count: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestFromItemsEmpty(t *testing.T) {
	got := FromItems(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestDTOFields(t *testing.T) {
	assertNoInterfaceFields(t, reflect.TypeOf(Item{}))
	assertNoInterfaceFields(t, reflect.TypeOf(ItemDetail{}))
	assertNoInterfaceFields(t, reflect.TypeOf(Category{}))
	assertNoInterfaceFields(t, reflect.TypeOf(Stats{}))
}

func assertNoInterfaceFields(t *testing.T, typ reflect.Type) {
	t.Helper()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldType := field.Type

		if field.Anonymous {
			assertNoInterfaceFields(t, fieldType)
			continue
		}

		switch fieldType.Kind() {
		case reflect.Interface:
			t.Fatalf("field %s in %s must not be interface type", field.Name, typ.Name())
		case reflect.Struct:
			assertNoInterfaceFields(t, fieldType)
		case reflect.Slice, reflect.Array:
			if fieldType.Elem().Kind() == reflect.Interface {
				t.Fatalf("field %s in %s must not contain interface elements", field.Name, typ.Name())
			}
			if fieldType.Elem().Kind() == reflect.Struct {
				assertNoInterfaceFields(t, fieldType.Elem())
			}
		}
	}
}
