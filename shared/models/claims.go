package models

import "github.com/golang-jwt/jwt/v5"

// Claims представляет стандартные поля JWT и пользовательские данные,
// которые мы хотим включить в токен.
//
// Name and NameID are optional on the wire: tokens minted elsewhere with the same
// key, issuer and audience may omit them, so they are pointers.
type Claims struct {
	Name                 *string `json:"name,omitempty"`
	NameID               *string `json:"nameid,omitempty"`
	jwt.RegisteredClaims         // Issuer, Subject, Audience, ExpiresAt, NotBefore, IssuedAt, ID (JTI)
}
