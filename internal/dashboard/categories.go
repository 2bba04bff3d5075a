package dashboard

import (
	"fmt"

	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/validate"
)

// CreateCategory appends a new category to the end of the list.
// When in.ID is empty an id is generated.
func (m *Manager) CreateCategory(in validate.CategoryInput) (*domain.Category, error) {
	if errs := validate.Category(&in); len(errs) > 0 {
		return nil, errs
	}

	created := domain.Category{
		ID:        in.ID,
		Name:      in.Name,
		Icon:      in.Icon,
		CreatedAt: m.now().UTC(),
	}
	if created.ID == "" {
		created.ID = m.newID()
	}

	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		if doc.HasCategory(created.ID) {
			return validate.Errors{{Field: "id", Message: fmt.Sprintf("category id %q already exists", created.ID)}}
		}
		doc.Categories = append(doc.Categories, created)
		return nil
	})
	if err != nil {
		return nil, wrapStorage("create category", err)
	}

	m.log.Info("created category", logger.String("id", created.ID))
	return &created, nil
}

// UpdateCategory replaces the name and icon of an existing category in
// place. The id and list position never change.
func (m *Manager) UpdateCategory(id string, in validate.CategoryInput) (*domain.Category, error) {
	in.ID = ""
	if errs := validate.Category(&in); len(errs) > 0 {
		return nil, errs
	}

	var updated domain.Category
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		i := doc.CategoryIndex(id)
		if i < 0 {
			return &NotFoundError{Entity: "category", ID: id}
		}
		doc.Categories[i].Name = in.Name
		doc.Categories[i].Icon = in.Icon
		updated = doc.Categories[i]
		return nil
	})
	if err != nil {
		return nil, wrapStorage("update category", err)
	}

	m.log.Info("updated category", logger.String("id", id))
	return &updated, nil
}

// DeleteCategory removes a category. It refuses while any service still
// references the category; deletion never cascades.
func (m *Manager) DeleteCategory(id string) error {
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		i := doc.CategoryIndex(id)
		if i < 0 {
			return &NotFoundError{Entity: "category", ID: id}
		}
		if n := doc.CountServicesInCategory(id); n > 0 {
			return &ReferenceError{Message: fmt.Sprintf("cannot delete category with %d associated service(s), delete the services first", n)}
		}
		doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
		return nil
	})
	if err != nil {
		return wrapStorage("delete category", err)
	}

	m.log.Info("deleted category", logger.String("id", id))
	return nil
}

// ReorderCategories rewrites the category list in the given order.
// orderedIDs must be an exact permutation of the existing ids or the
// whole operation is rejected.
func (m *Manager) ReorderCategories(orderedIDs []string) error {
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		byID := make(map[string]domain.Category, len(doc.Categories))
		for _, cat := range doc.Categories {
			byID[cat.ID] = cat
		}
		seen := make(map[string]bool, len(orderedIDs))
		reordered := make([]domain.Category, 0, len(orderedIDs))
		for _, id := range orderedIDs {
			cat, ok := byID[id]
			if !ok {
				return &NotFoundError{Entity: "category", ID: id}
			}
			if seen[id] {
				return validate.Errors{{Field: "orderedIds", Message: fmt.Sprintf("duplicate category id %q", id)}}
			}
			seen[id] = true
			reordered = append(reordered, cat)
		}
		if len(orderedIDs) != len(doc.Categories) {
			return validate.Errors{{Field: "orderedIds", Message: fmt.Sprintf("expected %d category ids, got %d", len(doc.Categories), len(orderedIDs))}}
		}
		doc.Categories = reordered
		return nil
	})
	if err != nil {
		return wrapStorage("reorder categories", err)
	}

	m.log.Info("reordered categories", logger.Int("count", len(orderedIDs)))
	return nil
}
