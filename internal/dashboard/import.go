package dashboard

import (
	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/sources/homepage"
	"github.com/crapshack/crapdash/internal/utils"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	Categories int // categories created
	Services   int // services created
	Skipped    int // entries skipped (existing id or unusable data)
}

// ImportHomepage merges Homepage entries into the document in one
// commit. Groups become categories and entries become services, with
// ids slugged from their names. Existing ids are left untouched and
// counted as skipped, so re-importing the same file is a no-op.
func (m *Manager) ImportHomepage(entries []homepage.Entry) (ImportResult, error) {
	var res ImportResult
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		now := m.now().UTC()
		for _, entry := range entries {
			catID := utils.Slugify(entry.Group)
			if catID == "" {
				res.Skipped++
				continue
			}
			if !doc.HasCategory(catID) {
				doc.Categories = append(doc.Categories, domain.Category{
					ID:        catID,
					Name:      entry.Group,
					CreatedAt: now,
				})
				res.Categories++
			}

			svcID := utils.Slugify(entry.Name)
			if svcID == "" || svcID == domain.AppLogoID || doc.HasService(svcID) {
				res.Skipped++
				continue
			}
			description := entry.Description
			if description == "" {
				description = entry.Name
			}
			doc.Services = append(doc.Services, domain.Service{
				ID:          svcID,
				Name:        entry.Name,
				Description: description,
				URL:         entry.URL,
				CategoryID:  catID,
				Active:      true,
				CreatedAt:   now,
			})
			res.Services++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, wrapStorage("import", err)
	}

	m.log.Info("imported homepage services",
		logger.Int("categories", res.Categories),
		logger.Int("services", res.Services),
		logger.Int("skipped", res.Skipped))
	return res, nil
}
