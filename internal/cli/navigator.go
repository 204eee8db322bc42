package cli

import (
	"context"
	"io"
	"sync"
)

// navigator is the gateway's view of "where the user is" on the command
// line. Navigating to the login location ends the local session and tells
// the user how to sign in again.
type navigator struct {
	app *App
}

func (n *navigator) CurrentPath() string {
	return n.app.currentPath
}

func (n *navigator) Navigate(path string) {
	if n.app.keeper != nil {
		if err := n.app.keeper.Clear(context.Background()); err != nil && n.app.logger != nil {
			n.app.logger.Err(err).Str("func", "*navigator.Navigate").Msg("error clearing local session")
		}
	}

	n.app.toast(toastWarning, "Session expired. Run `"+appName+" login` to sign in again.")
	if n.app.logger != nil {
		n.app.logger.Info().Str("location", path).Msg("login required")
	}
}

// lockedWriter serialises writes from the command and from the deferred
// login redirect.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
