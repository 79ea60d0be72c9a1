package ports

// TokenManager issues and verifies the signed bearer tokens the API hands
// out at login. Verify returns the token's subject (the user id) or
// domain.ErrInvalidToken; it never touches storage.
type TokenManager interface {
	Issue(userID, name string) (string, error)
	Verify(token string) (string, error)
}
