package validate

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/crapshack/crapdash/internal/domain"
)

// CategoryInput is the raw input for creating or updating a category.
// ID is only honored on creation; when empty, one is generated.
type CategoryInput struct {
	ID   string             `json:"id" validate:"omitempty,slug,max=64"`
	Name string             `json:"name" validate:"required,max=100"`
	Icon *domain.IconConfig `json:"icon"`
}

// ServiceInput is the raw input for creating or updating a service.
type ServiceInput struct {
	ID          string             `json:"id" validate:"omitempty,slug,max=64"`
	Name        string             `json:"name" validate:"required,max=100"`
	Description string             `json:"description" validate:"required,max=500"`
	URL         string             `json:"url" validate:"required"`
	CategoryID  string             `json:"categoryId" validate:"required"`
	Icon        *domain.IconConfig `json:"icon"`
	Active      *bool              `json:"active"`
}

// SettingsInput carries an app settings update. Nil fields are left
// untouched; RemoveLogo explicitly clears the logo.
type SettingsInput struct {
	Title      *string            `json:"appTitle"`
	Logo       *domain.IconConfig `json:"appLogo"`
	RemoveLogo bool               `json:"-"`
}

var slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// validate is the shared validator instance. Field names in errors come
// from json tags so they match the wire representation.
var v = func() *validator.Validate {
	vd := validator.New(validator.WithRequiredStructEnabled())
	vd.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := vd.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return vd
}()

// Category validates and normalizes a category input. Icon names are
// rewritten to their canonical form. Returns every applicable error.
func Category(in *CategoryInput) Errors {
	errs := structErrors(in)
	// Image icons are disallowed on categories.
	errs = append(errs, iconErrors("icon", in.Icon, domain.IconTypeIcon, domain.IconTypeEmoji)...)
	return errs
}

// Service validates and normalizes a service input.
func Service(in *ServiceInput) Errors {
	errs := structErrors(in)
	if in.URL != "" && !isAbsoluteURL(in.URL) {
		errs = append(errs, FieldError{Field: "url", Message: "must be an absolute URL"})
	}
	errs = append(errs, iconErrors("icon", in.Icon,
		domain.IconTypeImage, domain.IconTypeIcon, domain.IconTypeEmoji)...)
	if in.ID == domain.AppLogoID {
		errs = append(errs, FieldError{Field: "id", Message: fmt.Sprintf("%q is reserved", domain.AppLogoID)})
	}
	return errs
}

// Settings validates and normalizes an app settings update. The title
// is trimmed; a whitespace-only title reduces to unset.
func Settings(in *SettingsInput) Errors {
	var errs Errors
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		if len([]rune(trimmed)) > 100 {
			errs = append(errs, FieldError{Field: "appTitle", Message: "must be at most 100 characters"})
		} else {
			*in.Title = trimmed
		}
	}
	if in.Logo != nil && in.RemoveLogo {
		errs = append(errs, FieldError{Field: "appLogo", Message: "cannot set and remove the logo in the same update"})
	}
	// The app logo can only be an uploaded image.
	errs = append(errs, iconErrors("appLogo", in.Logo, domain.IconTypeImage)...)
	return errs
}

// structErrors runs tag-based validation and maps the result to field
// errors in struct field order.
func structErrors(in any) Errors {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "general", Message: err.Error()}}
	}
	errs := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "slug":
		return "must be a lowercase slug (letters, digits, dashes)"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// iconErrors checks an optional icon against the allowed kinds and
// normalizes symbolic names to canonical form.
func iconErrors(field string, ic *domain.IconConfig, allowed ...domain.IconType) Errors {
	if ic == nil {
		return nil
	}
	kindOK := false
	for _, kind := range allowed {
		if ic.Type == kind {
			kindOK = true
			break
		}
	}
	if !kindOK {
		return Errors{{Field: field, Message: fmt.Sprintf("icon type %q is not allowed here", ic.Type)}}
	}

	var errs Errors
	switch ic.Type {
	case domain.IconTypeImage:
		if !IsSafeIconPath(ic.Value) {
			errs = append(errs, FieldError{Field: field, Message: "must be a relative icons/ path with an allowed image extension"})
		}
	case domain.IconTypeIcon:
		canonical, ok := ResolveIconName(ic.Value)
		if !ok {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("unknown icon name %q", ic.Value)})
		} else {
			ic.Value = canonical
		}
	case domain.IconTypeEmoji:
		value := strings.TrimSpace(ic.Value)
		if value == "" {
			errs = append(errs, FieldError{Field: field, Message: "emoji value is required"})
		} else if len([]rune(value)) > 16 {
			errs = append(errs, FieldError{Field: field, Message: "emoji value must be at most 16 characters"})
		} else {
			ic.Value = value
		}
	}
	return errs
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
