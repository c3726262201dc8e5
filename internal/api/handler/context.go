package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUser extracts the identity injected by the Auth middleware and performs
// a fast-fail check before any service call: a zero user id means the
// middleware did not run or the token carried no identity, so reject with 401
// rather than let a bogus id reach the store.
func ctxUser(c echo.Context) (userID int, isAdmin bool, err error) {
	userID, _ = c.Get("user_id").(int)
	if userID <= 0 {
		return 0, false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	isAdmin, _ = c.Get("is_admin").(bool)
	return userID, isAdmin, nil
}
