package domain

// Admin is the single back-office operator. There is no user table; the
// credential comes from configuration and the session is a bearer token.
type Admin struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
