// Package jwt issues and verifies the HS256 bearer tokens minted on
// register and login. Tokens carry only the user id as subject plus iat and
// exp; authorization decisions belong to the HTTP layer.
package jwt
