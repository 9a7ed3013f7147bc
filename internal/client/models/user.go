package models

// Credentials are sent to the signup and signin endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the profile returned by /api/v1/me.
type User struct {
	Username string `json:"username"`
}

// Tweet is the embeddable view of a post, resolved through oEmbed.
type Tweet struct {
	ID     string
	Author string
	Text   string
	URL    string
}
