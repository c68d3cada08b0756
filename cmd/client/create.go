package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/inboxproxy/inboxproxy/pkg/rest/client"
)

type createCmd struct{}

func (*createCmd) Name() string {
	return "create"
}

func (*createCmd) Synopsis() string {
	return "create a temporary mailbox"
}

func (*createCmd) Usage() string {
	return `create:
	create a temporary mailbox, printing its identifiers
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {}

func (c *createCmd) Execute(
	ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Setup rest client
	cl, err := client.New(baseURL())
	if err != nil {
		return fatal("Couldn't build client", err)
	}

	account, err := cl.CreateAccount(ctx)
	if err != nil {
		return fatal("REST call failed", err)
	}
	fmt.Println("address:  ", account.Address)
	fmt.Println("password: ", account.Password)
	fmt.Println("accountId:", account.AccountID)
	fmt.Println("mailboxId:", account.MailboxID)

	return subcommands.ExitSuccess
}
