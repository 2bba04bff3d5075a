package dashboard

import (
	"testing"

	"github.com/crapshack/crapdash/internal/sources/homepage"
)

func TestImportHomepage(t *testing.T) {
	m := newTestManager(t)

	entries := []homepage.Entry{
		{Group: "Infrastructure", Name: "AdGuard Home", Description: "DNS blocker", URL: "https://adguard.domain.ext"},
		{Group: "Infrastructure", Name: "Proxmox", URL: "https://proxmox.domain.ext"},
		{Group: "Media", Name: "Jellyfin", Description: "Movies", URL: "https://jellyfin.domain.ext"},
	}

	res, err := m.ImportHomepage(entries)
	if err != nil {
		t.Fatalf("ImportHomepage() error = %v", err)
	}
	if res.Categories != 2 || res.Services != 3 || res.Skipped != 0 {
		t.Errorf("ImportHomepage() = %+v, want 2 categories, 3 services", res)
	}

	doc, err := m.Config()
	if err != nil {
		t.Fatal(err)
	}
	if !doc.HasCategory("infrastructure") || !doc.HasCategory("media") {
		t.Errorf("missing slugged categories: %+v", doc.Categories)
	}
	svcIdx := doc.ServiceIndex("adguard-home")
	if svcIdx < 0 {
		t.Fatalf("missing slugged service: %+v", doc.Services)
	}
	svc := doc.Services[svcIdx]
	if svc.CategoryID != "infrastructure" || !svc.Active {
		t.Errorf("imported service = %+v", svc)
	}

	// Entries without a description fall back to the name.
	proxmox := doc.Services[doc.ServiceIndex("proxmox")]
	if proxmox.Description != "Proxmox" {
		t.Errorf("description fallback = %q, want Proxmox", proxmox.Description)
	}
}

func TestImportHomepageIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	entries := []homepage.Entry{
		{Group: "Media", Name: "Jellyfin", URL: "https://jellyfin.domain.ext"},
	}

	if _, err := m.ImportHomepage(entries); err != nil {
		t.Fatalf("first import error = %v", err)
	}
	res, err := m.ImportHomepage(entries)
	if err != nil {
		t.Fatalf("second import error = %v", err)
	}
	if res.Categories != 0 || res.Services != 0 || res.Skipped != 1 {
		t.Errorf("second import = %+v, want everything skipped", res)
	}

	doc, _ := m.Config()
	if len(doc.Categories) != 1 || len(doc.Services) != 1 {
		t.Errorf("re-import duplicated entities: %d categories, %d services",
			len(doc.Categories), len(doc.Services))
	}
}

func TestImportHomepagePreservesExistingEntities(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateService(t, m, "jellyfin", "media")

	res, err := m.ImportHomepage([]homepage.Entry{
		{Group: "Media", Name: "Jellyfin", URL: "https://other.example.com"},
	})
	if err != nil {
		t.Fatalf("ImportHomepage() error = %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("ImportHomepage() = %+v, want the colliding service skipped", res)
	}

	svc, _ := m.ServiceByID("jellyfin")
	if svc.URL != "https://jellyfin.local" {
		t.Errorf("import overwrote an existing service: %+v", svc)
	}
}
