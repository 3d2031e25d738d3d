package middlewares

import (
	"tbs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "cart_session"

// Carts live for the browser session only, so the cookie carries no account
// identity, just a random token keying the in-process cart.
const sessionCookieMaxAge = 12 * 60 * 60

// CartSession assigns each shopper a session token on first contact and makes
// it available as "session_id" to the handlers downstream.
func CartSession(ctx *gin.Context) {
	sid, err := ctx.Cookie(SessionCookieName)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		ctx.SetCookie(SessionCookieName, sid, sessionCookieMaxAge, "/", "", utils.IsProd(), true)
	}
	ctx.Set("session_id", sid)
}
