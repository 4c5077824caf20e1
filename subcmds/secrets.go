// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
	"golang.org/x/term"
)

type Secrets struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags

	save bool
}

func (c *Secrets) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("secrets", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.BoolVar(&c.save, "save", false, "asks the server to persist the passwords")
	return "secrets", fset, cli.CmdFunc(c.run)
}

func (c *Secrets) Purpose() string {
	return "Updates the broker passwords on the server"
}

func (c *Secrets) Description() string {
	return `
Command "secrets" prompts for the broker api password and the order password
and sends them to the server. Passwords are read without echo when standard
input is a terminal, or one per line otherwise. Empty passwords are left
unchanged on the server.

Passwords are only kept in the server's memory unless -save flag is given.
`
}

func (c *Secrets) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	read := readPasswordLines(os.Stdin)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		read = func(prompt string) (string, error) {
			fmt.Fprint(os.Stderr, prompt)
			data, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stderr)
			return string(data), err
		}
	}
	apiPassword, err := read("API password (empty to keep): ")
	if err != nil {
		return fmt.Errorf("could not read api password: %w", err)
	}
	orderPassword, err := read("Order password (empty to keep): ")
	if err != nil {
		return fmt.Errorf("could not read order password: %w", err)
	}
	if len(apiPassword) == 0 && len(orderPassword) == 0 && !c.save {
		return fmt.Errorf("no passwords to update")
	}

	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.UpdateSecrets(ctx, apiPassword, orderPassword, c.save)
	if err != nil {
		return fmt.Errorf("could not update secrets: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	if !resp.OK {
		return fmt.Errorf("server rejected the secrets")
	}
	for _, key := range []string{"api_password", "order_password"} {
		if resp.Updated[key] {
			fmt.Fprintf(stdout, "%s updated\n", key)
		}
	}
	if resp.Saved {
		fmt.Fprintln(stdout, "secrets saved on the server")
	}
	return nil
}

func readPasswordLines(r io.Reader) func(string) (string, error) {
	scanner := bufio.NewScanner(r)
	return func(string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", nil
		}
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
}
