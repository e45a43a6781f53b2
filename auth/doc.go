// Package auth implements email/password authentication with signed
// session tokens. It provides a bcrypt password hasher, an HMAC signed
// claims codec, and two verification strategies: local (email+password)
// and bearer (token from the authorization header).
package auth
