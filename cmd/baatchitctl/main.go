package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matheus3301/baatchit/internal/session"
	"github.com/matheus3301/baatchit/internal/tui/client"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	sessionName, err := session.Resolve(*sessionFlag)
	if err != nil {
		fatal(err)
	}
	if err := session.ValidateName(sessionName); err != nil {
		fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	// Listing sessions does not need a daemon.
	if args[0] == "sessions" {
		cmdSessions(*jsonFlag)
		return
	}

	c, err := client.New(session.SocketPath(sessionName))
	if err != nil {
		fatal(fmt.Errorf("cannot connect to daemon for session %q: %w", sessionName, err))
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if args[0] != "events" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
	}

	out := &output{json: *jsonFlag}
	if err := run(ctx, c, out, args); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, out *output, args []string) error {
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}
	switch args[0] {
	case "status":
		return cmdStatus(ctx, c, out)
	case "theme":
		return cmdTheme(ctx, c, out, sub)
	case "chats":
		return cmdChats(ctx, c, out, sub == "fav" || sub == "--fav")
	case "fav":
		if sub == "" {
			return usageError("fav <chat-id>")
		}
		return cmdFav(ctx, c, out, sub)
	case "send":
		if len(args) < 3 {
			return usageError("send <chat-id> <text>")
		}
		return cmdSend(ctx, c, out, args[1], args[2:])
	case "posts":
		return cmdPosts(ctx, c, out, sub == "--refresh" || sub == "refresh")
	case "settings":
		return cmdSettings(ctx, c, out, args[1:])
	case "profile":
		return cmdProfile(ctx, c, out, args[1:])
	case "notify":
		return cmdNotify(ctx, c, out, args[1:])
	case "events":
		return cmdEvents(ctx, c, out, args[1:])
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: baatchitctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                       Show daemon status")
	fmt.Fprintln(os.Stderr, "  theme [get|toggle|light|dark] Show or change the theme")
	fmt.Fprintln(os.Stderr, "  chats [fav]                  List chats, optionally favorites only")
	fmt.Fprintln(os.Stderr, "  fav <chat-id>                Toggle a favorite")
	fmt.Fprintln(os.Stderr, "  send <chat-id> <text>        Send a message")
	fmt.Fprintln(os.Stderr, "  posts [--refresh]            List posts")
	fmt.Fprintln(os.Stderr, "  settings [get|set k=v|reset] Show or change settings")
	fmt.Fprintln(os.Stderr, "  profile [get|set k=v]        Show or change the profile")
	fmt.Fprintln(os.Stderr, "  notify [list|badge [n]|test|schedule <delay> <text>|cancel]")
	fmt.Fprintln(os.Stderr, "  events [prefix...]           Stream daemon events")
	fmt.Fprintln(os.Stderr, "  sessions                     List local sessions")
}

type usageError string

func (u usageError) Error() string { return "usage: baatchitctl " + string(u) }

func fatal(err error) {
	fmt.Fprintln(os.Stderr, errStyle.Render("error: ")+err.Error())
	os.Exit(1)
}

// output prints either styled text or indented JSON.
type output struct {
	json bool
}

var jsonOptions = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

// emit writes v as JSON when requested and reports whether it did. Proto
// messages go through protojson so field names match the wire schema.
func (o *output) emit(v any) bool {
	if !o.json {
		return false
	}
	if m, ok := v.(proto.Message); ok {
		b, err := jsonOptions.Marshal(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
			return true
		}
		fmt.Println(string(b))
		return true
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
	return true
}
