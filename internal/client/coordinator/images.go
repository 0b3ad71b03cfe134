package coordinator

import (
	"strings"

	"github.com/stpnv0/EventHub/internal/domain"
)

const fallbackImageURL = "https://images.unsplash.com/photo-1541339907198-e08756dedf3f?auto=format&fit=crop&q=80&w=1000"

var categoryImages = map[domain.Category]string{
	domain.CategoryAcademic: "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?auto=format&fit=crop&q=80&w=1000",
	domain.CategorySocial:   "https://images.unsplash.com/photo-1523301386673-989097b4a149?auto=format&fit=crop&q=80&w=1000",
	domain.CategorySports:   "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&q=80&w=1000",
	domain.CategoryCultural: "https://images.unsplash.com/photo-1514525253440-b393452e8d03?auto=format&fit=crop&q=80&w=1000",
	domain.CategoryWorkshop: "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&q=80&w=1000",
	domain.CategoryCareer:   "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&q=80&w=1000",
}

// DefaultImageURL returns the stock picture for a category.
func DefaultImageURL(c domain.Category) string {
	if url, ok := categoryImages[c]; ok {
		return url
	}
	return fallbackImageURL
}

func withDefaultImage(d domain.EventDraft) domain.EventDraft {
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	if d.ImageURL == "" {
		d.ImageURL = DefaultImageURL(d.Category)
	}
	return d
}
