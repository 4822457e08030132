// Command contact submits a message to a running contact relay.
//
//	contact -url https://gav.dev -name "Jane Doe" -email jane@example.com -message "Hello"
//
// The message is read from stdin when -message is "-".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gavdev/portfolio/pkg/contactclient"
	"github.com/gavdev/portfolio/pkg/validator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		baseURL = fs.String("url", "http://localhost:8080", "site origin serving the relay")
		name    = fs.String("name", "", "sender name")
		mail    = fs.String("email", "", "sender email, used as Reply-To")
		message = fs.String("message", "", `message text, or "-" to read stdin`)
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *message == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "read message: %v\n", err)
			return 1
		}
		*message = strings.TrimRight(string(b), "\n")
	}

	if err := validator.Apply(
		validator.Required("name", *name),
		validator.Required("email", *mail),
		validator.ValidEmail("email", *mail),
		validator.Required("message", *message),
	); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	form := contactclient.NewForm(contactclient.New(*baseURL))
	form.SetName(*name)
	form.SetEmail(*mail)
	form.SetMessage(*message)

	if status, _ := form.Submit(ctx); status != contactclient.StatusSuccess {
		fmt.Fprintln(stderr, form.Error())
		return 1
	}

	fmt.Fprintln(stdout, "Message sent. Thank you!")
	return 0
}
