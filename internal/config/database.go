// internal/config/database.go
package config

import (
	"fmt"
)

// DSN renders the postgres keyword/value connection string. SSLMode is always
// emitted; Load defaults it to "disable" for local development, so production
// deployments must set DB_SSL_MODE explicitly.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}
