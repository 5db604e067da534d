package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRobotsTxtExcludesGatedAreas(t *testing.T) {
	r := testRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/robots.txt", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, path := range []string{"/admin", "/auth", "/dashboard", "/api"} {
		if !strings.Contains(body, "Disallow: "+path) {
			t.Errorf("robots.txt should disallow %s", path)
		}
	}
	if !strings.Contains(body, "Sitemap: https://harbourmove.com.au/sitemap.xml") {
		t.Error("robots.txt should reference the sitemap")
	}
}

func TestSitemapListsPublicPagesOnly(t *testing.T) {
	r := testRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/sitemap.xml", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<loc>https://harbourmove.com.au/services</loc>") {
		t.Error("sitemap should list public pages")
	}
	for _, gated := range []string{"/admin", "/dashboard", "/api"} {
		if strings.Contains(body, gated) {
			t.Errorf("sitemap should not list %s", gated)
		}
	}
}

func TestAdminAPIRequiresAuth(t *testing.T) {
	r := testRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/submissions", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", rec.Code)
	}
}

func TestAdminWSRequiresAdminSession(t *testing.T) {
	r := testRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/ws/admin", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a session, got %d", rec.Code)
	}
}
