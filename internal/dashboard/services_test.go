package dashboard

import (
	"reflect"
	"testing"

	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/validate"
)

func TestCreateService(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")

	svc, err := m.CreateService(validate.ServiceInput{
		ID:          "plex",
		Name:        "Plex",
		Description: "x",
		URL:         "https://plex.local",
		CategoryID:  "media",
	})
	if err != nil {
		t.Fatalf("CreateService() error = %v", err)
	}
	if !svc.Active {
		t.Error("CreateService() did not default Active to true")
	}

	services, err := m.ServicesByCategory("media")
	if err != nil {
		t.Fatal(err)
	}
	if len(services) != 1 || services[0].ID != "plex" {
		t.Errorf("ServicesByCategory() = %+v, want exactly plex", services)
	}
}

func TestCreateServiceDanglingCategory(t *testing.T) {
	m := newTestManager(t)

	_, err := m.CreateService(validate.ServiceInput{
		ID:          "plex",
		Name:        "Plex",
		Description: "x",
		URL:         "https://plex.local",
		CategoryID:  "ghost",
	})
	if !IsReference(err) {
		t.Fatalf("CreateService() error = %v, want reference error", err)
	}

	services, _ := m.Services()
	if len(services) != 0 {
		t.Errorf("rejected create modified the document: %+v", services)
	}
}

func TestCreateServiceDuplicateID(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateService(t, m, "plex", "media")

	_, err := m.CreateService(validate.ServiceInput{
		ID:          "plex",
		Name:        "Plex Again",
		Description: "x",
		URL:         "https://plex2.local",
		CategoryID:  "media",
	})
	if !IsValidation(err) {
		t.Fatalf("duplicate id error = %v, want validation error", err)
	}
}

func TestUpdateService(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateCategory(t, m, "tools", "Tools")
	created := mustCreateService(t, m, "plex", "media")

	hidden := false
	updated, err := m.UpdateService("plex", validate.ServiceInput{
		Name:        "Plex Media Server",
		Description: "movies and shows",
		URL:         "https://plex.example.com",
		CategoryID:  "tools",
		Active:      &hidden,
	})
	if err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}
	if updated.ID != "plex" || updated.CategoryID != "tools" || updated.Active {
		t.Errorf("UpdateService() = %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update changed CreatedAt")
	}

	_, err = m.UpdateService("plex", validate.ServiceInput{
		Name:        "Plex",
		Description: "x",
		URL:         "https://plex.local",
		CategoryID:  "ghost",
	})
	if !IsReference(err) {
		t.Errorf("dangling category on update error = %v, want reference error", err)
	}
}

func TestUpdateServiceIconAwayFromImageDeletesFile(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateService(t, m, "plex", "media")

	if _, err := m.UploadServiceIcon("plex", pngBytes, "image/png", "plex.png"); err != nil {
		t.Fatalf("UploadServiceIcon() error = %v", err)
	}
	if got := iconDirBasenames(t, m, "plex"); len(got) != 1 {
		t.Fatalf("icon files = %v, want one", got)
	}

	_, err := m.UpdateService("plex", validate.ServiceInput{
		Name:        "Plex",
		Description: "x",
		URL:         "https://plex.local",
		CategoryID:  "media",
		Icon:        &domain.IconConfig{Type: domain.IconTypeEmoji, Value: "🎬"},
	})
	if err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}

	if got := iconDirBasenames(t, m, "plex"); len(got) != 0 {
		t.Errorf("icon files after switching to emoji = %v, want none", got)
	}
}

func TestUpdateServiceKeepsImageIcon(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateService(t, m, "plex", "media")

	relPath, err := m.UploadServiceIcon("plex", pngBytes, "image/png", "plex.png")
	if err != nil {
		t.Fatalf("UploadServiceIcon() error = %v", err)
	}

	_, err = m.UpdateService("plex", validate.ServiceInput{
		Name:        "Plex",
		Description: "renamed",
		URL:         "https://plex.local",
		CategoryID:  "media",
		Icon:        &domain.IconConfig{Type: domain.IconTypeImage, Value: relPath},
	})
	if err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}

	if got := iconDirBasenames(t, m, "plex"); len(got) != 1 {
		t.Errorf("icon files = %v, want the image kept", got)
	}
}

func TestDeleteServiceRemovesIconFile(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateService(t, m, "plex", "media")

	if _, err := m.UploadServiceIcon("plex", pngBytes, "image/png", "plex.png"); err != nil {
		t.Fatalf("UploadServiceIcon() error = %v", err)
	}

	if err := m.DeleteService("plex"); err != nil {
		t.Fatalf("DeleteService() error = %v", err)
	}

	services, _ := m.Services()
	if len(services) != 0 {
		t.Errorf("Services() = %+v, want empty", services)
	}
	if got := iconDirBasenames(t, m, "plex"); len(got) != 0 {
		t.Errorf("icon files after delete = %v, want none", got)
	}

	if err := m.DeleteService("plex"); !IsNotFound(err) {
		t.Errorf("second delete error = %v, want not-found", err)
	}
}

func TestReorderServices(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateCategory(t, m, "tools", "Tools")
	// Interleave services of the two categories.
	mustCreateService(t, m, "plex", "media")
	mustCreateService(t, m, "grafana", "tools")
	mustCreateService(t, m, "jellyfin", "media")
	mustCreateService(t, m, "portainer", "tools")

	if err := m.ReorderServices("media", []string{"jellyfin", "plex"}); err != nil {
		t.Fatalf("ReorderServices() error = %v", err)
	}

	services, err := m.Services()
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, len(services))
	for _, svc := range services {
		got = append(got, svc.ID)
	}
	// media slots swapped, tools services untouched in place.
	want := []string{"jellyfin", "grafana", "plex", "portainer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("service order = %v, want %v", got, want)
	}
}

func TestReorderServicesRejectsForeignOrMissingIDs(t *testing.T) {
	m := newTestManager(t)
	mustCreateCategory(t, m, "media", "Media")
	mustCreateService(t, m, "plex", "media")

	tests := []struct {
		name  string
		ids   []string
		check func(error) bool
	}{
		{name: "id not in category", ids: []string{"plex", "grafana"}, check: IsNotFound},
		{name: "wrong count", ids: []string{}, check: IsValidation},
		{name: "identity order accepted", ids: []string{"plex"}, check: func(err error) bool { return err == nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.ReorderServices("media", tt.ids)
			if !tt.check(err) {
				t.Errorf("ReorderServices(%v) error = %v", tt.ids, err)
			}

			services, _ := m.Services()
			if len(services) != 1 || services[0].ID != "plex" {
				t.Errorf("document changed: %+v", services)
			}
		})
	}

	if err := m.ReorderServices("ghost", []string{"plex"}); !IsNotFound(err) {
		t.Errorf("unknown category error = %v, want not-found", err)
	}
}
