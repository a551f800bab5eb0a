package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeSortClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"title":      "title",
	}

	tests := []struct {
		name    string
		sortBy  string
		sortDir string
		want    string
	}{
		{"known column asc", "title", "asc", "title ASC"},
		{"known column desc", "title", "desc", "title DESC"},
		{"unknown column falls back silently", "password_hash", "desc", "created_at DESC"},
		{"empty sort_by falls back", "", "asc", "created_at ASC"},
		{"anything but asc is desc", "title", "ascending", "title DESC"},
		{"asc is case-insensitive", "title", "ASC", "title ASC"},
		{"injection attempt falls back", "title; DROP TABLE users", "asc", "created_at ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeSortClause(allowed, tt.sortBy, "created_at", tt.sortDir)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()

	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/items", 20, 0},
		{"explicit", "/items?limit=5&offset=10", 5, 10},
		{"limit capped", "/items?limit=500", 100, 0},
		{"garbage falls back", "/items?limit=abc&offset=-3", 20, 0},
		{"zero limit falls back", "/items?limit=0", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestResolvePagingNoCap(t *testing.T) {
	app := fiber.New()

	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 50, 0)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/items?limit=5000", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 5000, got.Limit)
}
