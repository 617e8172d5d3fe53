package ports

// TokenClaims is the identity a verified token asserts. Roles reflect the
// user's roles at issuance time; later role changes are not visible until
// the user re-authenticates.
type TokenClaims struct {
	UserID string
	Roles  []string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// There is no revocation: a leaked token stays valid until it expires.
type TokenService interface {
	Issue(userID string, roles []string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
