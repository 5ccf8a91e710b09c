package models

// User is one row of the Users sheet. Passwords are opaque: the remote store
// checks them during login and this process never inspects or hashes them.
type User struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Sanitized returns a copy safe to hand back to API callers.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
