package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/inboxproxy/inboxproxy/pkg/config"
	"github.com/inboxproxy/inboxproxy/pkg/server/web"
)

var routesOnce sync.Once

// setupWebServer wires the shared router to a config pointing at the given
// provider base URL. Route registration happens once; Initialize may be
// called per test to swap configuration.
func setupWebServer(providerURL, apiKey string) {
	conf := &config.Root{
		Web: config.Web{Addr: "127.0.0.1:0"},
		Upstream: config.Upstream{
			BaseURL:    providerURL,
			APIKey:     apiKey,
			Timeout:    5 * time.Second,
			Domain:     "example.com",
			Password:   "hunter2",
			MaxRetries: 3,
			RetryDelay: time.Millisecond,
		},
	}
	routesOnce.Do(func() {
		SetupRoutes(web.Router)
	})
	web.Initialize(conf, make(chan bool))
}

func testRest(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Add("Accept", "application/json")
	w := httptest.NewRecorder()
	web.Router.ServeHTTP(w, req)
	return w
}

// fakeProvider is a minimal scripted upstream used by controller tests.
type fakeProvider struct {
	mu          sync.Mutex
	createCalls int
	listCalls   int
	deleteCalls int

	createStatus int
	createBody   string
	listBody     string
	deleteStatus int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		createStatus: http.StatusCreated,
		createBody: `{"id":"acct1","address":"ignored","mailboxes":[
			{"id":"mb1","path":"INBOX"},{"id":"mb2","path":"Trash"}]}`,
		listBody:     `[]`,
		deleteStatus: http.StatusNoContent,
	}
}

func (p *fakeProvider) start() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()
		switch {
		case req.Method == "POST" && req.URL.Path == "/accounts":
			p.createCalls++
			w.WriteHeader(p.createStatus)
			_, _ = w.Write([]byte(p.createBody))
		case req.Method == "GET" && strings.HasSuffix(req.URL.Path, "/messages"):
			p.listCalls++
			_, _ = w.Write([]byte(p.listBody))
		case req.Method == "DELETE" && strings.HasPrefix(req.URL.Path, "/accounts/"):
			p.deleteCalls++
			w.WriteHeader(p.deleteStatus)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (p *fakeProvider) counts() (creates, lists, deletes int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.createCalls, p.listCalls, p.deleteCalls
}
