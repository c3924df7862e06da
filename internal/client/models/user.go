package models

// User is the authenticated account record returned by the backend.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Session pairs the signed-in user with the bearer token for that device.
// A zero Session (nil User, empty Token) means "no session".
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
