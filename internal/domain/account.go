package domain

import "time"

// StartingCoins is the balance granted to every account at registration
const StartingCoins = 1000

// Account represents a registered user. UID is the opaque identity issued by
// the fronting auth layer; the service never mints its own user ids.
type Account struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Coins     int64     `json:"coins"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile holds display metadata shown on the profile page. None of it is
// consulted by the marketplace.
type Profile struct {
	DisplayName string `json:"display_name"`
	Pronouns    string `json:"pronouns"`
	Status      string `json:"status"`
	Tagline     string `json:"tagline"`
	Bio         string `json:"bio"`
	Theme       string `json:"theme"`
	Accent      string `json:"accent"`
}

// DefaultProfile returns the profile written at registration
func DefaultProfile(email string) Profile {
	name := email
	if name == "" {
		name = "wanderer"
	}
	return Profile{
		DisplayName: name,
		Status:      "haunting the grid",
		Tagline:     "retro layer stacker",
		Theme:       "crt",
		Accent:      "red",
	}
}
