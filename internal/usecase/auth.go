package usecase

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the deployment-configured admin identity. Disabled
// turns the whole auth gate off for local and test operation.
type AdminCredentials struct {
	Username     string
	PasswordHash string
	Disabled     bool
}

// VerifyAdminCredentials checks a login attempt against the configured
// credentials. A missing configuration fails closed: the attempt is treated
// as invalid and the misconfiguration is logged, never disclosed to the
// caller.
func VerifyAdminCredentials(creds AdminCredentials, username, password string) bool {
	if creds.Disabled {
		return true
	}
	if creds.Username == "" || creds.PasswordHash == "" {
		slog.Error("admin credentials not configured, set ADMIN_USERNAME and ADMIN_PASSWORD_HASH")
		return false
	}
	if username != creds.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) == nil
}
