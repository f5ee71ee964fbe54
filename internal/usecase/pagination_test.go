package usecase

import "testing"

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		items          []string
		page           int
		limit          int
		total          int64
		wantTotalPages int
	}{
		{name: "empty result", items: nil, page: 1, limit: 20, total: 0, wantTotalPages: 0},
		{name: "single page", items: []string{"a", "b"}, page: 1, limit: 20, total: 2, wantTotalPages: 1},
		{name: "exact multiple", items: []string{"a"}, page: 2, limit: 10, total: 40, wantTotalPages: 4},
		{name: "partial last page", items: []string{"a"}, page: 1, limit: 10, total: 41, wantTotalPages: 5},
		{name: "zero limit yields no pages", items: nil, page: 1, limit: 0, total: 7, wantTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPage(tt.items, tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.wantTotalPages {
				t.Fatalf("NewPage total=%d limit=%d: TotalPages = %d, want %d", tt.total, tt.limit, p.TotalPages, tt.wantTotalPages)
			}
			if p.Page != tt.page || p.Limit != tt.limit || p.Total != tt.total {
				t.Fatalf("NewPage echoed envelope = (%d, %d, %d), want (%d, %d, %d)", p.Page, p.Limit, p.Total, tt.page, tt.limit, tt.total)
			}
			if len(p.Items) != len(tt.items) {
				t.Fatalf("NewPage kept %d items, want %d", len(p.Items), len(tt.items))
			}
		})
	}
}
