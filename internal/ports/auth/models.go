package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string

	// Anonymous indica un login anónimo (cuenta demo); habilita el seed inicial.
	Anonymous bool
}
