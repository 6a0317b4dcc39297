// Package templates holds the fixed catalog of resume layout templates.
// Templates are immutable once published; adding a new one changes visual
// styling only, never section placement (that policy lives in render).
package templates

import "errors"

// Layout is the structural column arrangement of a template.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
)

// Subscription tiers recognized by the premium gate.
const (
	TierFree = "free"
	TierPro  = "pro"
)

// Template is a named visual style selectable per resume.
type Template struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Layout          Layout `json:"layout"`
	PreviewImageURL string `json:"previewImageUrl"`
	IsPremium       bool   `json:"isPremium"`
}

// ErrUnknownTemplate is returned when an id does not resolve. It is never
// silently substituted with a default.
var ErrUnknownTemplate = errors.New("unknown template")

var catalog = []Template{
	{
		ID:              "modern_clean",
		Name:            "Modern Clean",
		Category:        "modern",
		Layout:          LayoutTwoColumn,
		PreviewImageURL: "/previews/modern_clean.png",
	},
	{
		ID:              "professional",
		Name:            "Professional",
		Category:        "traditional",
		Layout:          LayoutSingleColumn,
		PreviewImageURL: "/previews/professional.png",
	},
	{
		ID:              "creative",
		Name:            "Creative",
		Category:        "design-forward",
		Layout:          LayoutTwoColumn,
		PreviewImageURL: "/previews/creative.png",
	},
	{
		ID:              "minimal",
		Name:            "Minimal",
		Category:        "modern",
		Layout:          LayoutSingleColumn,
		PreviewImageURL: "/previews/minimal.png",
	},
	{
		ID:              "executive",
		Name:            "Executive",
		Category:        "corporate",
		Layout:          LayoutTwoColumn,
		PreviewImageURL: "/previews/executive.png",
		IsPremium:       true,
	},
}

// List returns the catalog in declaration order.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Get resolves a template id.
func Get(id string) (Template, error) {
	for _, tpl := range catalog {
		if tpl.ID == id {
			return tpl, nil
		}
	}
	return Template{}, ErrUnknownTemplate
}

// Exists reports whether the id resolves.
func Exists(id string) bool {
	_, err := Get(id)
	return err == nil
}

// IsAccessible reports whether a subscription tier may select the template.
// This is selection policy for the UI and billing layer; the editing engine
// does not enforce it.
func IsAccessible(tpl Template, tier string) bool {
	return !tpl.IsPremium || tier == TierPro
}
