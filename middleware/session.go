package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/session"
)

const (
	sessionKey = "session"
	managerKey = "session_manager"
)

// Session resolves the request's session cookie and makes the session
// available to handlers via Current. Handlers that mutate session state must
// call Save before writing their response so a fresh session's cookie can
// still make it into the headers; a final commit after the handler picks up
// quiet mutations on already-established sessions.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := manager.Open(c.Request.Context(), c.Request)
		c.Set(sessionKey, sess)
		c.Set(managerKey, manager)

		c.Next()

		if err := manager.Commit(c.Request.Context(), c.Writer, sess); err != nil {
			log.Printf("session commit failed: %v", err)
		}
	}
}

// Current returns the request's session. Panics if the Session middleware is
// not installed; every route group mounts it.
func Current(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// Save commits the session immediately. Safe to call more than once; the
// final middleware commit becomes a no-op when nothing changed since.
func Save(c *gin.Context) error {
	sess := Current(c)
	manager := c.MustGet(managerKey).(*session.Manager)
	return manager.Commit(c.Request.Context(), c.Writer, sess)
}
