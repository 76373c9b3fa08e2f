package cli

import (
	"github.com/mkhalil/studenthub/internal/analytics"
	"github.com/mkhalil/studenthub/internal/auth"
	"github.com/mkhalil/studenthub/internal/hub"
	"github.com/mkhalil/studenthub/internal/repository"
)

// Context carries the wired application roots into every command.
type Context struct {
	Hub       *hub.Hub
	Session   *auth.Session
	Analytics *analytics.Engine
	DataDir   string
}

// Repo returns the repository bound to the signed-in user, or
// ErrNotAuthenticated when nobody is signed in.
func (c *Context) Repo() (*repository.Repository, error) {
	return c.Hub.Repo()
}
