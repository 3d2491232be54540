package cli

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/mailadmin/internal/common"
)

// Authenticate is the admin gate. Username and password are compared in
// constant time with the configured admin credentials. An unset admin
// password denies every login.
func (a *App) Authenticate(ctx context.Context) error {
	user, err := GetSimpleText(a.reader, "Admin username", a.out)
	if err != nil {
		return fmt.Errorf("read admin username: %w", common.ErrAccessDenied)
	}
	password, err := GetPassword(a.reader, "Admin password", a.out)
	if err != nil {
		return fmt.Errorf("read admin password: %w", common.ErrAccessDenied)
	}
	defer common.WipeByteArray(password)

	if a.config.AdminPassword == "" {
		a.logger.Error(ctx, "admin password not configured", "env", common.EnvPrefix+"ADMIN_PASSWORD")
		return common.ErrAccessDenied
	}

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.config.AdminUser))
	passOK := subtle.ConstantTimeCompare(password, []byte(a.config.AdminPassword))
	if userOK&passOK != 1 {
		a.logger.Warn(ctx, "admin login rejected", "username", user)
		return common.ErrAccessDenied
	}
	a.logger.Info(ctx, "admin login", "username", user)
	return nil
}
