// Package repl is a small interactive shell over one table engine,
// used by the driver binary to poke at a document.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/leengari/tabledom/internal/dom"
	"github.com/leengari/tabledom/internal/engine"
	"github.com/leengari/tabledom/internal/model"
	"github.com/leengari/tabledom/internal/parse"
)

// Start runs the shell until exit. Mutations are saved to outputPath
// with the save command.
func Start(eng *engine.Engine, doc dom.Document, outputPath string) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to tabledom")
	fmt.Println("Type 'help' for commands, 'exit' or '\\q' to quit.")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}
		if line == "exit" || line == "\\q" {
			return
		}

		if err := run(eng, doc, outputPath, scanner, line); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func run(eng *engine.Engine, doc dom.Document, outputPath string, scanner *bufio.Scanner, line string) error {
	args := strings.Fields(line)
	cmd := args[0]
	args = args[1:]

	// confirm <subcommand> routes through the async engine with a
	// stdin prompt as the decision function
	confirm := false
	if cmd == "confirm" {
		if len(args) == 0 {
			return fmt.Errorf("usage: confirm add|update|delete ...")
		}
		confirm = true
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "help":
		printHelp()

	case "show":
		PrintTable(os.Stdout, eng.Table())

	case "json":
		b, err := eng.Table().ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(b))

	case "hidden":
		for k, v := range eng.Table().Hidden {
			fmt.Printf("  %s = %s\n", k, v)
		}

	case "add":
		fields, err := parseFields(args, eng.Table())
		if err != nil {
			return err
		}
		if confirm {
			row, ok, err := eng.AddRowAsync(context.Background(), fields, func(ctx context.Context, candidate model.TableRow) (model.Fields, bool, error) {
				return nil, prompt(scanner, fmt.Sprintf("add row %s?", candidate.ID)), nil
			})
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("cancelled")
				return nil
			}
			fmt.Printf("added row %s\n", row.ID)
			return nil
		}
		row := eng.AddRow(fields)
		fmt.Printf("added row %s\n", row.ID)

	case "update":
		if len(args) < 1 {
			return fmt.Errorf("usage: update <id> key=value ...")
		}
		id := args[0]
		fields, err := parseFields(args[1:], eng.Table())
		if err != nil {
			return err
		}
		var ok bool
		if confirm {
			ok, err = eng.UpdateRowAsync(context.Background(), id, fields, func(ctx context.Context, current model.TableRow, updates model.Fields) (model.Fields, bool, error) {
				return updates, prompt(scanner, fmt.Sprintf("update row %s?", id)), nil
			})
			if err != nil {
				return err
			}
		} else {
			ok = eng.UpdateRow(id, fields)
		}
		if !ok {
			fmt.Printf("no row with id %s\n", id)
			return nil
		}
		fmt.Printf("updated row %s\n", id)

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		id := args[0]
		var ok bool
		var err error
		if confirm {
			ok, err = eng.DeleteRowAsync(context.Background(), id, func(ctx context.Context, current model.TableRow) (bool, error) {
				return prompt(scanner, fmt.Sprintf("delete row %s?", id)), nil
			})
			if err != nil {
				return err
			}
		} else {
			ok = eng.DeleteRow(id)
		}
		if !ok {
			fmt.Printf("no row with id %s\n", id)
			return nil
		}
		fmt.Printf("deleted row %s\n", id)

	case "refresh":
		if err := eng.Refresh(); err != nil {
			return err
		}
		fmt.Println("reparsed from document")

	case "save":
		html, err := doc.HTML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
			return err
		}
		fmt.Printf("saved to %s\n", outputPath)

	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return nil
}

func printHelp() {
	fmt.Println(`Commands:
  show                         print the table
  json                         print the table as JSON
  hidden                       print hidden sidecar values
  add key=value ...            add a row (id=... sets an explicit identity)
  update <id> key=value ...    update a row
  delete <id>                  delete a row
  confirm add|update|delete    same, but ask before committing
  refresh                      re-parse the model from the document
  save                         write the document back to disk
  exit                         quit`)
}

// prompt asks a yes/no question on the shell's own scanner.
func prompt(scanner *bufio.Scanner, question string) bool {
	fmt.Printf("%s [y/N] ", question)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// parseFields turns key=value arguments into a partial row, coercing
// each value through its column's type. Unknown keys stay text.
func parseFields(args []string, t *model.Table) (model.Fields, error) {
	fields := make(model.Fields, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		if key == "id" {
			fields[key] = value
			continue
		}
		if h, ok := t.Header(key); ok {
			fields[key] = parse.Coerce(value, h.Type)
		} else {
			fields[key] = value
		}
	}
	return fields, nil
}

// PrintTable renders the model as an aligned grid with typed headers.
func PrintTable(w io.Writer, t *model.Table) {
	if t.Name != "" && t.Name != t.ID {
		fmt.Fprintf(w, "%s (#%s)\n", t.Name, t.ID)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Header - show column name with inferred type
	fmt.Fprint(tw, "id")
	for _, h := range t.Headers {
		fmt.Fprintf(tw, "\t%s (%s)", h.Name, h.Type)
	}
	fmt.Fprintln(tw)

	for _, row := range t.Rows {
		fmt.Fprint(tw, row.ID)
		for _, h := range t.Headers {
			v, ok := row.Get(h.Name)
			if !ok {
				fmt.Fprint(tw, "\t")
				continue
			}
			fmt.Fprintf(tw, "\t%s", v.String())
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
	fmt.Fprintf(w, "(%d rows)\n", len(t.Rows))
}
