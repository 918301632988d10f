package models

// Session is the single signed-in slot of the process.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"is_authenticated"`
}
