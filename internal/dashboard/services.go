package dashboard

import (
	"fmt"

	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/validate"
)

// CreateService appends a new service to the end of the list. The
// referenced category must exist; when in.ID is empty an id is
// generated.
func (m *Manager) CreateService(in validate.ServiceInput) (*domain.Service, error) {
	if errs := validate.Service(&in); len(errs) > 0 {
		return nil, errs
	}

	created := domain.Service{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		CategoryID:  in.CategoryID,
		Icon:        in.Icon,
		Active:      true,
		CreatedAt:   m.now().UTC(),
	}
	if in.Active != nil {
		created.Active = *in.Active
	}
	if created.ID == "" {
		created.ID = m.newID()
	}

	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		if !doc.HasCategory(created.CategoryID) {
			return &ReferenceError{Message: fmt.Sprintf("category %q does not exist", created.CategoryID)}
		}
		if doc.HasService(created.ID) {
			return validate.Errors{{Field: "id", Message: fmt.Sprintf("service id %q already exists", created.ID)}}
		}
		doc.Services = append(doc.Services, created)
		return nil
	})
	if err != nil {
		return nil, wrapStorage("create service", err)
	}

	m.log.Info("created service",
		logger.String("id", created.ID),
		logger.String("category", created.CategoryID))
	return &created, nil
}

// UpdateService replaces all mutable fields of an existing service in
// place. When the icon moves away from an uploaded image, the old image
// file is deleted only after the commit succeeded.
func (m *Manager) UpdateService(id string, in validate.ServiceInput) (*domain.Service, error) {
	in.ID = ""
	if errs := validate.Service(&in); len(errs) > 0 {
		return nil, errs
	}

	var updated domain.Service
	var oldIcon *domain.IconConfig
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		i := doc.ServiceIndex(id)
		if i < 0 {
			return &NotFoundError{Entity: "service", ID: id}
		}
		if !doc.HasCategory(in.CategoryID) {
			return &ReferenceError{Message: fmt.Sprintf("category %q does not exist", in.CategoryID)}
		}
		svc := &doc.Services[i]
		oldIcon = svc.Icon
		svc.Name = in.Name
		svc.Description = in.Description
		svc.URL = in.URL
		svc.CategoryID = in.CategoryID
		svc.Icon = in.Icon
		if in.Active != nil {
			svc.Active = *in.Active
		}
		updated = *svc
		return nil
	})
	if err != nil {
		return nil, wrapStorage("update service", err)
	}

	if oldIcon.IsImage() && !updated.Icon.IsImage() {
		m.icons.Delete(id)
	}

	m.log.Info("updated service", logger.String("id", id))
	return &updated, nil
}

// DeleteService removes a service and, after the commit, any uploaded
// icon file belonging to it.
func (m *Manager) DeleteService(id string) error {
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		i := doc.ServiceIndex(id)
		if i < 0 {
			return &NotFoundError{Entity: "service", ID: id}
		}
		doc.Services = append(doc.Services[:i], doc.Services[i+1:]...)
		return nil
	})
	if err != nil {
		return wrapStorage("delete service", err)
	}

	m.icons.Delete(id)

	m.log.Info("deleted service", logger.String("id", id))
	return nil
}

// ReorderServices rewrites the services of one category in the given
// order, leaving every other category's services at their positions.
// orderedIDs must be an exact permutation of that category's services.
func (m *Manager) ReorderServices(categoryID string, orderedIDs []string) error {
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		if !doc.HasCategory(categoryID) {
			return &NotFoundError{Entity: "category", ID: categoryID}
		}

		inCategory := make(map[string]domain.Service)
		for _, svc := range doc.Services {
			if svc.CategoryID == categoryID {
				inCategory[svc.ID] = svc
			}
		}
		seen := make(map[string]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			if _, ok := inCategory[id]; !ok {
				return &NotFoundError{Entity: "service", ID: id}
			}
			if seen[id] {
				return validate.Errors{{Field: "orderedIds", Message: fmt.Sprintf("duplicate service id %q", id)}}
			}
			seen[id] = true
		}
		if len(orderedIDs) != len(inCategory) {
			return validate.Errors{{Field: "orderedIds", Message: fmt.Sprintf("expected %d service ids for category %q, got %d", len(inCategory), categoryID, len(orderedIDs))}}
		}

		// Walk the document and fill the category's slots in the new
		// order; services of other categories keep their positions.
		next := 0
		for i := range doc.Services {
			if doc.Services[i].CategoryID != categoryID {
				continue
			}
			doc.Services[i] = inCategory[orderedIDs[next]]
			next++
		}
		return nil
	})
	if err != nil {
		return wrapStorage("reorder services", err)
	}

	m.log.Info("reordered services",
		logger.String("category", categoryID),
		logger.Int("count", len(orderedIDs)))
	return nil
}
