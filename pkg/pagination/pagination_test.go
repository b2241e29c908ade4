package pagination

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     Params
	}{
		{"defaults for zero values", 0, 0, Params{Page: 1, PageSize: DefaultPageSize}},
		{"negative page", -3, 20, Params{Page: 1, PageSize: 20}},
		{"page size clamped to max", 2, 5000, Params{Page: 2, PageSize: MaxPageSize}},
		{"valid values pass through", 4, 25, Params{Page: 4, PageSize: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.page, tt.pageSize)
			if got != tt.want {
				t.Errorf("Normalize(%d, %d) = %+v, want %+v", tt.page, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PageSize: 10}
	if got := p.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("middle page", func(t *testing.T) {
		page := Paginate(items, Params{Page: 2, PageSize: 10})
		if len(page.Items) != 10 || page.Items[0] != 10 {
			t.Errorf("unexpected items: %v", page.Items)
		}
		if !page.HasNext || !page.HasPrev {
			t.Errorf("expected HasNext and HasPrev, got %+v", page)
		}
		if page.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", page.TotalPages)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		page := Paginate(items, Params{Page: 3, PageSize: 10})
		if len(page.Items) != 5 {
			t.Errorf("len(Items) = %d, want 5", len(page.Items))
		}
		if page.HasNext {
			t.Error("last page should not have next")
		}
	})

	t.Run("page past the end is clamped", func(t *testing.T) {
		page := Paginate(items, Params{Page: 99, PageSize: 10})
		if len(page.Items) != 0 {
			t.Errorf("len(Items) = %d, want 0", len(page.Items))
		}
		if page.Page != 3 {
			t.Errorf("Page = %d, want clamped to 3", page.Page)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		page := Paginate([]int{}, Params{Page: 1, PageSize: 10})
		if page.TotalPages != 1 {
			t.Errorf("TotalPages = %d, want 1", page.TotalPages)
		}
		if page.HasNext || page.HasPrev {
			t.Errorf("empty list should have no next/prev: %+v", page)
		}
	})
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{"middle of a long list", 10, 20, []int{7, 8, 9, 10, 11, 12, 13}},
		{"near the start", 2, 20, []int{1, 2, 3, 4, 5}},
		{"near the end", 19, 20, []int{16, 17, 18, 19, 20}},
		{"fewer pages than window", 1, 2, []int{1, 2}},
		{"single page", 1, 1, []int{1}},
		{"current past the end", 50, 5, []int{2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageWindow(tt.current, tt.totalPages, WindowWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PageWindow(%d, %d, %d) = %v, want %v",
					tt.current, tt.totalPages, WindowWidth, got, tt.want)
			}
		})
	}
}
