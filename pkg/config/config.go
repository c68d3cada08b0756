package config

import (
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	prefix      = "inboxproxy"
	tableFormat = `inboxproxy is configured via the environment. The following environment
variables can be used:

KEY	DEFAULT	REQUIRED	DESCRIPTION
{{range .}}{{usage_key .}}	{{usage_default .}}	{{usage_required .}}	{{usage_description .}}
{{end}}`
)

var (
	// Version of this build, set by main
	Version = ""

	// BuildDate for this build, set by main
	BuildDate = ""
)

// Root wraps all other configurations.
type Root struct {
	LogLevel string `required:"true" default:"info" desc:"debug, info, warn, or error"`
	Web      Web
	Upstream Upstream
}

// Web contains the HTTP server configuration.
type Web struct {
	Addr string `required:"true" default:"0.0.0.0:8000" desc:"Web server IP4 host:port"`
}

// Upstream contains the temporary email provider configuration.
type Upstream struct {
	BaseURL    string        `required:"true" default:"https://api.smtp.dev" desc:"Provider API base URL"`
	APIKey     string        `desc:"Provider API key"`
	Timeout    time.Duration `required:"true" default:"20s" desc:"Per-request provider timeout"`
	Domain     string        `required:"true" default:"vvvcx.me" desc:"Domain for generated addresses"`
	Password   string        `required:"true" default:"thisispassword" desc:"Password for created accounts"`
	MaxRetries int           `required:"true" default:"3" desc:"Account creation attempts"`
	RetryDelay time.Duration `required:"true" default:"3s" desc:"Delay between creation attempts"`
}

// Process loads and parses configuration from the environment.
func Process() (*Root, error) {
	c := &Root{}
	err := envconfig.Process(prefix, c)
	return c, err
}

// Usage prints out the envconfig usage to Stderr.
func Usage() {
	tabs := tabwriter.NewWriter(os.Stderr, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(prefix, &Root{}, tabs, tableFormat); err != nil {
		log.Fatalf("Unable to parse env config: %v", err)
	}
	tabs.Flush()
}
