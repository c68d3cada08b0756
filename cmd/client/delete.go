package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/inboxproxy/inboxproxy/pkg/rest/client"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string {
	return "delete"
}

func (*deleteCmd) Synopsis() string {
	return "delete a temporary mailbox"
}

func (*deleteCmd) Usage() string {
	return `delete <accountId>:
	delete the account from the upstream provider
`
}

func (d *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (d *deleteCmd) Execute(
	ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accountID := f.Arg(0)
	if accountID == "" {
		return usage("accountId required")
	}

	// Setup rest client
	cl, err := client.New(baseURL())
	if err != nil {
		return fatal("Couldn't build client", err)
	}

	result, err := cl.DeleteAccount(ctx, accountID)
	if err != nil {
		return fatal("REST call failed", err)
	}
	fmt.Println(result.Message)

	return subcommands.ExitSuccess
}
