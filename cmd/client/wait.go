package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/inboxproxy/inboxproxy/pkg/rest/client"
)

type waitCmd struct {
	timeout  int
	interval int
}

func (*waitCmd) Name() string {
	return "wait"
}

func (*waitCmd) Synopsis() string {
	return "wait for a message to arrive"
}

func (*waitCmd) Usage() string {
	return `wait [-timeout n] [-interval n] <accountId> <mailboxId>:
	block until the mailbox receives a message, print it as JSON
`
}

func (w *waitCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&w.timeout, "timeout", 0, "seconds to wait before giving up (server default 60)")
	f.IntVar(&w.interval, "interval", 0, "seconds between polls (server default 5)")
}

func (w *waitCmd) Execute(
	ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accountID := f.Arg(0)
	mailboxID := f.Arg(1)
	if accountID == "" || mailboxID == "" {
		return usage("accountId and mailboxId required")
	}

	// Setup rest client
	cl, err := client.New(baseURL())
	if err != nil {
		return fatal("Couldn't build client", err)
	}

	msg, err := cl.WaitForMessage(ctx, accountID, mailboxID, w.timeout, w.interval)
	if err != nil {
		return fatal("REST call failed", err)
	}
	fmt.Println(string(msg))

	return subcommands.ExitSuccess
}
