package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func pagingContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&limit=50", 3, 50},
		{"limit capped", "limit=500", 1, 100},
		{"zero page falls back", "page=0", 1, 20},
		{"negative limit falls back", "limit=-5", 1, 20},
		{"garbage falls back", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ParsePageLimit(pagingContext(t, tt.query))
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		page, limit int
		want        int64
	}{
		{1, 20, 0},
		{3, 20, 40},
		{2, 100, 100},
		{0, 20, 0},
		{5, 0, 80},
	}

	for _, tt := range tests {
		if got := Skip(tt.page, tt.limit); got != tt.want {
			t.Errorf("Skip(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"", 200, false},
		{"50", 50, false},
		{"900", 500, false},
		{"-1", 0, true},
		{"0", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ClampLimit(tt.value, 200, 500)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ClampLimit(%q, 200, 500): want error, got %d", tt.value, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClampLimit(%q, 200, 500): unexpected error %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ClampLimit(%q, 200, 500) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
