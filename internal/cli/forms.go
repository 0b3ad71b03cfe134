package cli

import (
	"fmt"
	"strconv"

	"github.com/stpnv0/EventHub/internal/domain"
)

// applyDraft overlays key=value fields onto base.
func applyDraft(base domain.EventDraft, fields map[string]string) (domain.EventDraft, error) {
	for key, value := range fields {
		switch key {
		case "title":
			base.Title = value
		case "date":
			base.Date = value
		case "time":
			base.Time = value
		case "location":
			base.Location = value
		case "category":
			base.Category = domain.Category(value)
		case "description":
			base.Description = value
		case "organizer":
			base.Organizer = value
		case "image":
			base.ImageURL = value
		case "capacity":
			n, err := strconv.Atoi(value)
			if err != nil {
				return base, fmt.Errorf("%w: capacity must be a number", domain.ErrValidation)
			}
			base.Capacity = n
		default:
			return base, fmt.Errorf("unknown event field %q", key)
		}
	}
	return base, nil
}

// registrationForm prefills the form from the signed-in user's profile.
func registrationForm(user *domain.User, fields map[string]string) (domain.RegistrationForm, error) {
	form := domain.RegistrationForm{}
	if user != nil {
		form.FullName = user.Name
		form.USN = user.USN
		form.Department = user.Department
	}

	for key, value := range fields {
		switch key {
		case "name":
			form.FullName = value
		case "email":
			form.Email = value
		case "phone":
			form.Phone = value
		case "usn":
			form.USN = value
		case "department":
			form.Department = value
		default:
			return form, fmt.Errorf("unknown form field %q", key)
		}
	}
	return form, nil
}
