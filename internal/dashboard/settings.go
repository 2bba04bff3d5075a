package dashboard

import (
	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/validate"
)

// UpdateSettings applies an app settings update. The title is trimmed
// and a whitespace-only title unsets it. RemoveLogo clears the logo and
// deletes the uploaded logo file once the commit succeeded.
func (m *Manager) UpdateSettings(in validate.SettingsInput) error {
	if errs := validate.Settings(&in); len(errs) > 0 {
		return errs
	}

	var removedLogo *domain.IconConfig
	err := m.store.Update(func(doc *domain.DashboardConfig) error {
		if in.Title != nil {
			doc.AppTitle = *in.Title
		}
		if in.RemoveLogo {
			removedLogo = doc.AppLogo
			doc.AppLogo = nil
		} else if in.Logo != nil {
			doc.AppLogo = in.Logo
		}
		return nil
	})
	if err != nil {
		return wrapStorage("update settings", err)
	}

	if removedLogo.IsImage() {
		m.icons.Delete(domain.AppLogoID)
	}

	m.log.Info("updated app settings")
	return nil
}

// UploadServiceIcon stores an uploaded image for the service and points
// the service's icon at it. The file is written before the commit; if
// the commit then fails the new file is an accepted orphan.
func (m *Manager) UploadServiceIcon(serviceID string, data []byte, declaredMIME, originalFilename string) (string, error) {
	doc, err := m.store.Load()
	if err != nil {
		return "", wrapStorage("load", err)
	}
	if !doc.HasService(serviceID) {
		return "", &NotFoundError{Entity: "service", ID: serviceID}
	}

	relPath, err := m.icons.Store(serviceID, data, declaredMIME, originalFilename)
	if err != nil {
		return "", wrapStorage("icon upload", err)
	}

	err = m.store.Update(func(doc *domain.DashboardConfig) error {
		i := doc.ServiceIndex(serviceID)
		if i < 0 {
			return &NotFoundError{Entity: "service", ID: serviceID}
		}
		doc.Services[i].Icon = &domain.IconConfig{Type: domain.IconTypeImage, Value: relPath}
		return nil
	})
	if err != nil {
		return "", wrapStorage("icon upload", err)
	}

	m.log.Info("uploaded service icon",
		logger.String("service", serviceID),
		logger.String("path", relPath))
	return relPath, nil
}

// UploadAppLogo stores an uploaded image under the reserved app-logo
// basename and records it as the application logo.
func (m *Manager) UploadAppLogo(data []byte, declaredMIME, originalFilename string) (string, error) {
	relPath, err := m.icons.Store(domain.AppLogoID, data, declaredMIME, originalFilename)
	if err != nil {
		return "", wrapStorage("logo upload", err)
	}

	err = m.store.Update(func(doc *domain.DashboardConfig) error {
		doc.AppLogo = &domain.IconConfig{Type: domain.IconTypeImage, Value: relPath}
		return nil
	})
	if err != nil {
		return "", wrapStorage("logo upload", err)
	}

	m.log.Info("uploaded app logo", logger.String("path", relPath))
	return relPath, nil
}
