package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/inboxproxy/inboxproxy/pkg/config"
	"github.com/inboxproxy/inboxproxy/pkg/upstream"
)

// Context is passed into every request handler function. Each request gets
// its own upstream gateway so no state leaks between unrelated callers.
type Context struct {
	Vars       map[string]string
	RootConfig *config.Root
	gateway    *upstream.Client
}

// NewContext returns a Context for the given HTTP request.
func NewContext(req *http.Request) (*Context, error) {
	return &Context{
		Vars:       mux.Vars(req),
		RootConfig: rootConfig,
	}, nil
}

// Gateway returns this request's upstream client, building it on first use.
// It fails with upstream.ErrMissingAPIKey when the server has no key
// configured.
func (c *Context) Gateway() (*upstream.Client, error) {
	if c.gateway != nil {
		return c.gateway, nil
	}
	up := c.RootConfig.Upstream
	gw, err := upstream.New(up.BaseURL, up.APIKey, upstream.WithTimeout(up.Timeout))
	if err != nil {
		return nil, err
	}
	c.gateway = gw
	return gw, nil
}

// Close releases the Context's gateway, if one was built.
func (c *Context) Close() {
	if c.gateway != nil {
		c.gateway.Close()
		c.gateway = nil
	}
}
