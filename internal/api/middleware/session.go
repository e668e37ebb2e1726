package middleware

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"litboard/internal/session"
)

// SessionMiddleware loads the session named by the request cookie and makes
// it available to resolvers through the request context. A dirty session is
// persisted (and a destroyed one removed) just before the first byte of the
// response is written, so the Set-Cookie header still makes it out.
func SessionMiddleware(store session.Store, cookies *session.CookieManager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.New()
		if token, err := cookies.ReadToken(c.Request); err == nil {
			record, err := store.Get(c.Request.Context(), token)
			switch {
			case err == nil:
				sess = session.Resume(token, record)
			case errors.Is(err, session.ErrNotFound):
				// Stale cookie; fall through with a fresh session.
			default:
				log.Warn("session lookup failed", zap.Error(err))
			}
		}

		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))

		sw := &sessionWriter{ResponseWriter: c.Writer}
		sw.commit = func() {
			persistSession(c, sw.ResponseWriter, sess, store, cookies, log)
		}
		c.Writer = sw

		c.Next()

		// Commit even if the handler wrote nothing.
		sw.once.Do(sw.commit)
	}
}

func persistSession(c *gin.Context, w http.ResponseWriter, sess *session.Session, store session.Store, cookies *session.CookieManager, log *zap.Logger) {
	ctx := c.Request.Context()

	switch {
	case sess.Destroyed():
		if token := sess.Token(); token != "" {
			if err := store.Delete(ctx, token); err != nil {
				log.Error("failed to delete session", zap.Error(err))
			}
		}
		cookies.Clear(w)

	case sess.Dirty():
		sess.AdoptToken(uuid.NewString())
		if err := store.Set(ctx, sess.Token(), sess.Record(), session.Lifetime); err != nil {
			log.Error("failed to persist session", zap.Error(err))
			return
		}
		if err := cookies.WriteToken(w, sess.Token()); err != nil {
			log.Error("failed to write session cookie", zap.Error(err))
		}
	}
}

// sessionWriter runs commit exactly once, before headers are flushed.
type sessionWriter struct {
	gin.ResponseWriter
	once   sync.Once
	commit func()
}

func (w *sessionWriter) WriteHeaderNow() {
	w.once.Do(w.commit)
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) WriteHeader(code int) {
	w.once.Do(w.commit)
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.once.Do(w.commit)
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.once.Do(w.commit)
	return w.ResponseWriter.WriteString(s)
}
