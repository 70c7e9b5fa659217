// Package models defines the core data structures for users, sessions,
// and the two kinds of stored secrets.
package models

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Email is the unique sign-in address chosen at signup.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized into responses.
	PasswordHash string `json:"-"`
}

// Session is the persisted binding between an issued token and a user.
// A session is active while its row exists; deleting the row revokes
// the token. There is no expiry column.
type Session struct {
	// Token is the raw bearer token the session is keyed by.
	Token string `json:"token"`
	// UserID identifies the user the token was issued to.
	UserID string `json:"userId"`
}

// Credential is a stored site login. Password holds ciphertext at rest
// and plaintext only inside an authorized response.
type Credential struct {
	// ID is the unique identifier for the credential.
	ID string `json:"id"`
	// Title names the credential, unique within its owner's set.
	Title string `json:"title"`
	// URL is the address of the site the login belongs to.
	URL string `json:"url"`
	// Username is the login name for the site.
	Username string `json:"username"`
	// Password is the secret field (see package cipher).
	Password string `json:"password"`
	// UserID identifies the owning user.
	UserID string `json:"userId"`
}

// Network is a stored Wi-Fi secret. Same lifecycle shape as Credential,
// with a network name instead of url/username.
type Network struct {
	// ID is the unique identifier for the network secret.
	ID string `json:"id"`
	// Title names the entry, unique within its owner's set.
	Title string `json:"title"`
	// Network is the Wi-Fi network name (SSID).
	Network string `json:"network"`
	// Password is the secret field (see package cipher).
	Password string `json:"password"`
	// UserID identifies the owning user.
	UserID string `json:"userId"`
}

// RecordID implements service.Record.
func (c Credential) RecordID() string { return c.ID }

// RecordTitle implements service.Record.
func (c Credential) RecordTitle() string { return c.Title }

// RecordOwner implements service.Record.
func (c Credential) RecordOwner() string { return c.UserID }

// Secret implements service.Record.
func (c Credential) Secret() string { return c.Password }

// WithSecret returns a copy of the credential with the password replaced.
func (c Credential) WithSecret(s string) Credential {
	c.Password = s
	return c
}

// WithOwner returns a copy of the credential bound to the given owner.
func (c Credential) WithOwner(userID string) Credential {
	c.UserID = userID
	return c
}

// RecordID implements service.Record.
func (n Network) RecordID() string { return n.ID }

// RecordTitle implements service.Record.
func (n Network) RecordTitle() string { return n.Title }

// RecordOwner implements service.Record.
func (n Network) RecordOwner() string { return n.UserID }

// Secret implements service.Record.
func (n Network) Secret() string { return n.Password }

// WithSecret returns a copy of the network entry with the password replaced.
func (n Network) WithSecret(s string) Network {
	n.Password = s
	return n
}

// WithOwner returns a copy of the network entry bound to the given owner.
func (n Network) WithOwner(userID string) Network {
	n.UserID = userID
	return n
}
