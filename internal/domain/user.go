package domain

// User is the domain entity for a customer or admin account.
// Password holds the stored credential form ("hexkey.hexsalt"), never plaintext.
type User struct {
	ID       int64
	Username string
	Password string
	IsAdmin  bool
}
