package domain

// User models a registered account. PasswordHash holds the bcrypt digest
// and never crosses the API boundary.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
