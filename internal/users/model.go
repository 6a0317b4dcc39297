package users

import "time"

type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	FullName    string      `json:"fullName"`
	GivenName   string      `json:"givenName"`
	FamilyName  string      `json:"familyName"`
	PictureURL  string      `json:"pictureUrl"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Preferences are per-user editor defaults.
type Preferences struct {
	DefaultTemplate string `json:"defaultTemplate"`
	DefaultTheme    string `json:"defaultTheme"`
	Language        string `json:"language"`
}

// DefaultPreferences returns the preferences assigned to new accounts.
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultTemplate: "modern_clean",
		DefaultTheme:    "light",
		Language:        "en",
	}
}
