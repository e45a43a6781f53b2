// Command authkit is the service client: signup and signin persist the
// session token locally, fetch uses it against the protected route, and
// signout clears it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"authkit/client"
)

const usage = `usage: authkit [-server URL] [-dir PATH] <command> [arguments]

Commands:
  signup  -email EMAIL -password PASSWORD
  signin  -email EMAIL -password PASSWORD
  fetch
  signout
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("authkit", flag.ExitOnError)
	server := global.String("server", "http://localhost:3090", "service base URL")
	dir := global.String("dir", "", "token storage directory (default ~/.authkit)")
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() < 1 {
		global.Usage()
		return fmt.Errorf("missing command")
	}

	tokens, err := client.NewFileTokenStore(*dir)
	if err != nil {
		return err
	}
	c := client.New(*server, tokens)
	ctx := context.Background()

	command := global.Arg(0)
	rest := global.Args()[1:]

	switch command {
	case "signup":
		email, password, err := credentialArgs(command, rest)
		if err != nil {
			return err
		}
		if err := c.Signup(ctx, email, password); err != nil {
			return err
		}
		fmt.Println("signed up, token stored")
		return nil

	case "signin":
		email, password, err := credentialArgs(command, rest)
		if err != nil {
			return err
		}
		if err := c.Signin(ctx, email, password); err != nil {
			return err
		}
		fmt.Println("signed in, token stored")
		return nil

	case "fetch":
		message, err := c.FetchMessage(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil

	case "signout":
		if err := c.Signout(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil

	default:
		global.Usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func credentialArgs(command string, args []string) (string, string, error) {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if *email == "" || *password == "" {
		return "", "", fmt.Errorf("%s requires -email and -password", command)
	}
	return *email, *password, nil
}
