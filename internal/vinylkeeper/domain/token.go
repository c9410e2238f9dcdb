package domain

// TokenPair is what a successful login produces: a short-lived access token
// and a longer-lived refresh token, both signed JWTs carrying the user's
// external UUID as subject. Neither is persisted server-side; the session is
// fully stateless and tokens stay valid until they expire.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
