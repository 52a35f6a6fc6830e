package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantOffset: 40, wantLimit: 20},
		{name: "zero page defaults to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "negative size uses default", page: 2, size: -5, wantOffset: 10, wantLimit: DefaultPageSize},
		{name: "oversized page size capped", page: 1, size: MaxPageSize + 1, wantOffset: 0, wantLimit: DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page, size  int
		wantPages   int
		wantCurrent int
	}{
		{name: "exact division", total: 40, page: 1, size: 10, wantPages: 4, wantCurrent: 1},
		{name: "remainder adds a page", total: 41, page: 1, size: 10, wantPages: 5, wantCurrent: 1},
		{name: "empty result still one page", total: 0, page: 1, size: 10, wantPages: 1, wantCurrent: 1},
		{name: "page clamped to last", total: 20, page: 9, size: 10, wantPages: 2, wantCurrent: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.total, tt.page, tt.size)
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.CurrentPage != tt.wantCurrent {
				t.Errorf("CurrentPage = %d, want %d", info.CurrentPage, tt.wantCurrent)
			}
			if info.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tt.total)
			}
		})
	}
}
