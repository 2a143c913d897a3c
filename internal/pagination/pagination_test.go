package pagination

import "testing"

func TestDefaults(t *testing.T) {
	var req PageRequest
	req.Defaults()
	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("expected page 1 size 20, got %d/%d", req.Page, req.PageSize)
	}
	if req.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", req.Offset())
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("first_page", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 1, PageSize: 3})
		if len(resp.Data) != 3 || resp.Data[0] != 1 {
			t.Errorf("unexpected data: %v", resp.Data)
		}
		if resp.TotalItems != 7 || resp.TotalPages != 3 {
			t.Errorf("expected 7 items over 3 pages, got %d/%d", resp.TotalItems, resp.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 3, PageSize: 3})
		if len(resp.Data) != 1 || resp.Data[0] != 7 {
			t.Errorf("unexpected data: %v", resp.Data)
		}
	})

	t.Run("past_the_end", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 9, PageSize: 3})
		if resp.Data == nil || len(resp.Data) != 0 {
			t.Errorf("expected an empty, non-nil page, got %v", resp.Data)
		}
	})

	t.Run("copy", func(t *testing.T) {
		resp := Slice(items, PageRequest{})
		resp.Data[0] = 100
		if items[0] != 1 {
			t.Error("expected the page to be a copy")
		}
	})
}
