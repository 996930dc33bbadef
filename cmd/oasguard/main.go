package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/erraggy/oasguard"
	"github.com/erraggy/oasguard/guard"
	"github.com/erraggy/oasguard/internal/mcpserver"
	"github.com/erraggy/oasguard/parser"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasguard v%s\n", oasguard.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := handleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "routes":
		if err := handleRoutes(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// kvFlag collects repeated name=value flags into a map.
type kvFlag map[string]any

func (f kvFlag) String() string {
	if len(f) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(f))
	for k, v := range f {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (f kvFlag) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", value)
	}
	f[name] = val
	return nil
}

// checkFlags contains flags for the check command
type checkFlags struct {
	body     string
	bodyFile string
	query    kvFlag
	headers  kvFlag
	params   kvFlag
	cookies  kvFlag
	// cookies distinguishes "none sent" from "no parser"; the flag below
	// marks that a cookie container exists even when empty
	withCookies bool
	jsonOut     bool
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{
		query:   kvFlag{},
		headers: kvFlag{},
		params:  kvFlag{},
		cookies: kvFlag{},
	}

	fs.StringVar(&flags.body, "body", "", "request body as inline JSON")
	fs.StringVar(&flags.bodyFile, "body-file", "", "read the request body from a JSON file")
	fs.Var(flags.query, "query", "query parameter as name=value (repeatable)")
	fs.Var(flags.headers, "header", "header parameter as name=value (repeatable)")
	fs.Var(flags.params, "param", "path parameter as name=value (repeatable)")
	fs.Var(flags.cookies, "cookie", "cookie parameter as name=value (repeatable)")
	fs.BoolVar(&flags.withCookies, "with-cookies", false, "treat an empty cookie set as parsed-but-empty instead of no cookie parser")
	fs.BoolVar(&flags.jsonOut, "json", false, "print failures as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasguard check [flags] <spec> <method> <path>\n\n")
		_, _ = fmt.Fprintf(output, "Check a request against an operation of an OpenAPI 3.x document.\n")
		_, _ = fmt.Fprintf(output, "The method is a lowercase OAS verb and the path must exactly match a paths key.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasguard check --body '{\"name\":\"Rex\"}' openapi.yaml post /pets\n")
		_, _ = fmt.Fprintf(output, "  oasguard check --query limit=10 --header X-Request-Id=abc openapi.yaml get /pets\n")
		_, _ = fmt.Fprintf(output, "  oasguard check --param petId=7 --cookie session=s1 openapi.yaml get '/pets/{petId}'\n")
	}

	return fs, flags
}

func handleCheck(args []string) error {
	fs, flags := setupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("check command requires <spec> <method> <path>")
	}

	specPath, method, path := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	doc, err := parser.Parse(specPath)
	if err != nil {
		return fmt.Errorf("parsing spec: %w", err)
	}
	v, err := guard.New(doc)
	if err != nil {
		return err
	}
	checker, err := v.Route(method, path)
	if err != nil {
		return err
	}

	req := &guard.Request{
		Query:   flags.query,
		Headers: flags.headers,
		Params:  flags.params,
	}
	if len(flags.cookies) > 0 || flags.withCookies {
		req.Cookies = flags.cookies
	}

	bodyData := []byte(flags.body)
	if flags.bodyFile != "" {
		if flags.body != "" {
			return fmt.Errorf("only one of --body and --body-file may be set")
		}
		bodyData, err = os.ReadFile(flags.bodyFile)
		if err != nil {
			return fmt.Errorf("reading body file: %w", err)
		}
	}
	if len(bodyData) > 0 {
		if err := json.Unmarshal(bodyData, &req.Body); err != nil {
			return fmt.Errorf("decoding body: %w", err)
		}
	}

	verr := checker.Check(req)
	if verr == nil {
		fmt.Printf("request valid for %s %s\n", method, path)
		return nil
	}

	if flags.jsonOut {
		data, err := json.MarshalIndent(verr, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		fmt.Printf("request invalid for %s %s (%d field(s) failed)\n", method, path, len(verr.Fields))
		for _, f := range verr.Fields {
			fmt.Printf("  [%s] %s: %s\n", f.Part, pointerOrDash(f.Pointer), f.Message)
		}
	}
	os.Exit(1)
	return nil
}

func pointerOrDash(pointer string) string {
	if pointer == "" {
		return "-"
	}
	return pointer
}

func setupRoutesFlags() (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet("routes", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "print routes as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasguard routes [flags] <spec>\n\n")
		_, _ = fmt.Fprintf(output, "List the guardable operations of an OpenAPI 3.x document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, jsonOut
}

type routeInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operation_id,omitempty"`
}

func handleRoutes(args []string) error {
	fs, jsonOut := setupRoutesFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("routes command requires exactly one spec path")
	}

	doc, err := parser.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parsing spec: %w", err)
	}
	if _, err := guard.New(doc); err != nil {
		return err
	}

	routes := collectRoutes(doc)
	if *jsonOut {
		data, err := json.MarshalIndent(routes, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	for _, r := range routes {
		if r.OperationID != "" {
			fmt.Printf("%-7s %s  (%s)\n", r.Method, r.Path, r.OperationID)
		} else {
			fmt.Printf("%-7s %s\n", r.Method, r.Path)
		}
	}
	return nil
}

var verbs = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

func collectRoutes(doc *parser.Document) []routeInfo {
	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var routes []routeInfo
	for _, p := range paths {
		item := doc.Paths[p]
		for _, verb := range verbs {
			if op := item.ByMethod(verb); op != nil {
				routes = append(routes, routeInfo{Method: verb, Path: p, OperationID: op.OperationID})
			}
		}
	}
	return routes
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`oasguard - OpenAPI request guard

Usage:
  oasguard <command> [options]

Commands:
  check       Check a request against an operation of an OpenAPI 3.x spec
  routes      List the guardable operations of a spec
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasguard check --body '{"name":"Rex"}' openapi.yaml post /pets
  oasguard check --query limit=10 openapi.yaml get /pets
  oasguard routes openapi.yaml
  oasguard mcp

Run 'oasguard <command> --help' for more information on a command.`)
}
