package webserver

import (
	"encoding/gob"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionName is the cookie session shared by flash messages and the admin
// flag.
const SessionName = "webstore"

// Flash is a one-shot message rendered by the page layout. Level maps to a
// bootstrap alert class: success, info, warning, danger.
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// AddFlash queues a flash message on the caller's session.
func AddFlash(c echo.Context, level, message string) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		zap.L().Warn("session unavailable for flash", zap.Error(err))
		return
	}
	sess.AddFlash(Flash{Level: level, Message: message})
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		zap.L().Warn("failed to save session flash", zap.Error(err))
	}
}

// Flashes drains and returns queued flash messages.
func Flashes(c echo.Context) []Flash {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) > 0 {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			zap.L().Warn("failed to save session after draining flashes", zap.Error(err))
		}
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
