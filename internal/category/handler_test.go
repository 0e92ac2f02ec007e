package category

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func ptrInt64(v int64) *int64 { return &v }

func seedTree() []Category {
	return []Category{
		{ID: 1, Name: "Electronics", Slug: "electronics", Status: StatusActive},
		{ID: 2, Name: "Laptops", Slug: "laptops", ParentID: ptrInt64(1), Status: StatusActive},
		{ID: 3, Name: "Phones", Slug: "phones", ParentID: ptrInt64(1), Status: StatusInactive},
		{ID: 4, Name: "Home", Slug: "home", Status: StatusActive},
	}
}

func newTestApp(seed []Category) *fiber.App {
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	return app
}

func TestRootCategoriesExcludeChildren(t *testing.T) {
	app := newTestApp(seedTree())
	req := httptest.NewRequest("GET", "/api/v1/categories/root", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got []Category
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 root categories, got %d", len(got))
	}
	for _, cat := range got {
		if cat.ParentID != nil {
			t.Fatalf("non-root category %q in root listing", cat.Name)
		}
	}
}

func TestSubcategoriesOfNode(t *testing.T) {
	app := newTestApp(seedTree())
	req := httptest.NewRequest("GET", "/api/v1/categories/1/subcategories", nil)
	res, _ := app.Test(req)
	var got []Category
	json.NewDecoder(res.Body).Decode(&got)
	if len(got) != 2 {
		t.Fatalf("expected 2 subcategories of electronics, got %d", len(got))
	}
}

func TestGetBySlug(t *testing.T) {
	app := newTestApp(seedTree())
	req := httptest.NewRequest("GET", "/api/v1/categories/slug/laptops", nil)
	res, _ := app.Test(req)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var got Category
	json.NewDecoder(res.Body).Decode(&got)
	if got.ID != 2 {
		t.Fatalf("expected laptops (2), got %+v", got)
	}

	missing := httptest.NewRequest("GET", "/api/v1/categories/slug/nope", nil)
	res2, _ := app.Test(missing)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", res2.StatusCode)
	}
}
