package dashboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/crapshack/crapdash/internal/domain"
)

// Config returns the current document.
func (m *Manager) Config() (*domain.DashboardConfig, error) {
	doc, err := m.store.Load()
	if err != nil {
		return nil, wrapStorage("load", err)
	}
	return doc, nil
}

// Categories returns all categories in display order.
func (m *Manager) Categories() ([]domain.Category, error) {
	doc, err := m.Config()
	if err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

// Services returns all services in display order.
func (m *Manager) Services() ([]domain.Service, error) {
	doc, err := m.Config()
	if err != nil {
		return nil, err
	}
	return doc.Services, nil
}

// ServicesByCategory returns the services of one category in display
// order.
func (m *Manager) ServicesByCategory(categoryID string) ([]domain.Service, error) {
	doc, err := m.Config()
	if err != nil {
		return nil, err
	}
	if !doc.HasCategory(categoryID) {
		return nil, &NotFoundError{Entity: "category", ID: categoryID}
	}
	return doc.ServicesInCategory(categoryID), nil
}

// CategoryByID returns a single category.
func (m *Manager) CategoryByID(id string) (*domain.Category, error) {
	doc, err := m.Config()
	if err != nil {
		return nil, err
	}
	i := doc.CategoryIndex(id)
	if i < 0 {
		return nil, &NotFoundError{Entity: "category", ID: id}
	}
	cat := doc.Categories[i]
	return &cat, nil
}

// ServiceByID returns a single service.
func (m *Manager) ServiceByID(id string) (*domain.Service, error) {
	doc, err := m.Config()
	if err != nil {
		return nil, err
	}
	i := doc.ServiceIndex(id)
	if i < 0 {
		return nil, &NotFoundError{Entity: "service", ID: id}
	}
	svc := doc.Services[i]
	return &svc, nil
}

// Export writes the document verbatim as pretty-printed JSON, exactly
// as it is persisted.
func (m *Manager) Export(w io.Writer) error {
	doc, err := m.Config()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
