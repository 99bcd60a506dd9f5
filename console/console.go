// Package console is the terminal presentation layer.
// It reads one command per line, calls the notification service and renders
// the outcome. It never touches registry state directly.
package console

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"notification-lab/errors"
	"notification-lab/services"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const helpText = `Commands:
  add <name>            register a new user
  remove <name>         delete a user and its inbox
  subscribe <name>      deliver future posts to the user
  unsubscribe <name>    stop delivering posts to the user
  post <text>           publish a message on the channel
  inbox <name>          show the messages delivered to a user
  users                 list users
  channel               show the channel log
  search <terms> [--limit N]
  help
  quit`

type Console struct {
	svc     services.INotificationService
	out     io.Writer
	log     *slog.Logger
	colours bool
}

func NewConsole(log *slog.Logger, svc services.INotificationService, out io.Writer, colours bool) *Console {
	return &Console{svc: svc, out: out, log: log, colours: colours}
}

// Run executes commands read from in until EOF, quit, or ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	c.info("Type help to list commands.")
	for ctx.Err() == nil {
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := c.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
	return nil
}

// Serve runs the console on its own goroutine because reads from in cannot be
// interrupted. Once ctx is done it closes in when possible and waits up to
// grace for the current command to finish, so callers can release storage safely.
func (c *Console) Serve(ctx context.Context, in io.Reader, grace time.Duration) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- c.Run(ctx, in)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	if closer, ok := in.(io.Closer); ok {
		_ = closer.Close()
	}
	select {
	case err := <-errChan:
		if err != nil {
			c.log.Debug("Console input closed on shutdown", "error", err)
		}
	case <-time.After(grace):
		c.log.Warn("Console still busy after shutdown grace period", "grace", grace)
	}
	return nil
}

// Execute runs one command line and reports whether the console should stop.
func (c *Console) Execute(ctx context.Context, line string) bool {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case "":
	case "add":
		c.addUser(arg)
	case "remove":
		c.removeUser(arg)
	case "subscribe":
		c.subscribe(arg)
	case "unsubscribe":
		c.unsubscribe(arg)
	case "post":
		c.post(arg)
	case "inbox":
		c.inbox(arg)
	case "users":
		c.users()
	case "channel":
		c.channel()
	case "search":
		c.search(ctx, arg)
	case "help":
		c.println(helpText)
	case "quit", "exit":
		return true
	default:
		c.warn(fmt.Sprintf("Unknown command: %s. Type help to list commands.", command))
	}
	return false
}

func (c *Console) addUser(name string) {
	if err := c.svc.AddUser(name); err != nil {
		c.warn("Invalid user name or user already exists.")
		return
	}
	c.success("User added: " + name)
}

func (c *Console) removeUser(name string) {
	if err := c.svc.RemoveUser(name); err != nil {
		c.warn(notFound(name))
		return
	}
	c.success("User removed: " + name)
}

func (c *Console) subscribe(name string) {
	err := c.svc.Subscribe(name)
	switch {
	case err == nil:
		c.success("User subscribed: " + name)
	case stderrors.Is(err, errors.ErrAlreadySubscribed):
		c.warn("User already subscribed: " + name)
	default:
		c.warn(notFound(name))
	}
}

func (c *Console) unsubscribe(name string) {
	err := c.svc.Unsubscribe(name)
	switch {
	case err == nil:
		c.success("User unsubscribed: " + name)
	case stderrors.Is(err, errors.ErrNotSubscribed):
		c.warn("User is not subscribed: " + name)
	default:
		c.warn(notFound(name))
	}
}

func (c *Console) post(text string) {
	report, err := c.svc.PostMessage(text)
	switch {
	case stderrors.Is(err, errors.ErrEmptyMessage):
		c.warn("Message cannot be empty.")
	case err != nil:
		c.failure("Message could not be posted: " + err.Error())
	case report.DeliveredCount == 0:
		c.info("No subscribers to receive the message.")
	default:
		c.success(fmt.Sprintf("Message sent to %d subscribers.", report.DeliveredCount))
	}
}

func (c *Console) inbox(name string) {
	messages, err := c.svc.GetInbox(name)
	if err != nil {
		c.warn(notFound(name))
		return
	}
	if len(messages) == 0 {
		c.info("No messages for this user.")
		return
	}
	c.println(strings.Join(messages, "\n"))
}

func (c *Console) users() {
	users := c.svc.ListUsers()
	if len(users) == 0 {
		c.info("No users.")
		return
	}
	table := c.table("Name", "Subscribed")
	for _, user := range users {
		table.Append([]string{user.Name, strconv.FormatBool(user.Subscribed)})
	}
	table.Render()
}

func (c *Console) channel() {
	var cursor *string
	count := 0
	for {
		entries, next, err := c.svc.ChannelLog(cursor)
		if err != nil {
			c.failure("Channel log unavailable: " + err.Error())
			return
		}
		for _, entry := range entries {
			c.println("Channel: " + entry.Content)
		}
		count += len(entries)
		if next == nil {
			break
		}
		cursor = next
	}
	if count == 0 {
		c.info("No messages on the channel.")
	}
}

func (c *Console) search(ctx context.Context, input string) {
	hits, err := c.svc.SearchChannel(ctx, input)
	if err != nil {
		c.failure("Search failed: " + err.Error())
		return
	}
	if len(hits) == 0 {
		c.info("No matching messages.")
		return
	}
	table := c.table("Seq", "Message", "Score")
	for _, hit := range hits {
		table.Append([]string{
			strconv.FormatUint(hit.Seq, 10),
			hit.Content,
			strconv.FormatFloat(hit.Score, 'f', 2, 64),
		})
	}
	table.Render()
}

func (c *Console) table(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func notFound(name string) string {
	if name == "" {
		return "No user selected."
	}
	return "User not found: " + name
}

func (c *Console) success(msg string) { c.styled(color.New(color.FgGreen), msg) }
func (c *Console) info(msg string)    { c.styled(color.New(color.FgCyan), msg) }
func (c *Console) warn(msg string)    { c.styled(color.New(color.FgYellow), msg) }
func (c *Console) failure(msg string) { c.styled(color.New(color.FgRed, color.OpBold), msg) }

func (c *Console) styled(style color.Style, msg string) {
	if c.colours {
		msg = style.Render(msg)
	}
	c.println(msg)
}

func (c *Console) println(msg string) {
	if _, err := fmt.Fprintln(c.out, msg); err != nil {
		c.log.Error("Console write failed", "error", err)
	}
}
