package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isSignedIn(ctx context.Context) bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	Me(ctx context.Context) error
	List(ctx context.Context, query string) error
	Kinds(ctx context.Context) error
	Filter(ctx context.Context, kind string) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context) error
}

// runREPL reads a line from scanner, parses the first token as the command
// and dispatches to a. The loop exits on EOF or on "exit"/"quit".
//
//	Signed out:
//	  help, signup, signin, exit
//
//	Signed in:
//	  help, list [query], kinds, filter <kind|all>, add, delete <id>,
//	  share, me, signout, exit
//
// Handler errors are already reported to the user by the handlers. Command
// lines and handler prompts share reader, so piped input is consumed in
// order.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		prompt := "brainly> "
		if s := statusFn(); s != "" {
			prompt = fmt.Sprintf("brainly (%s)> ", s)
		}
		printlnFn(prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isSignedIn(ctx) {
				printlnFn("Available commands: (l)ist [query], kinds, filter <kind|all>, add, delete <id>, share, me, signout, exit")
			} else {
				printlnFn("Available commands: signup, signin, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "signin":
			_ = a.SignIn(ctx)

		case "signout":
			_ = a.SignOut(ctx)

		case "me":
			_ = a.Me(ctx)

		case "l", "list":
			_ = a.List(ctx, strings.Join(args, " "))

		case "kinds":
			_ = a.Kinds(ctx)

		case "filter":
			if len(args) != 1 {
				printlnFn("Usage: filter <kind|all>")
				continue
			}
			_ = a.Filter(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "share":
			_ = a.Share(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
