package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tuanvumaihuynh/product-catalog/internal/form"
	"github.com/tuanvumaihuynh/product-catalog/pkg/correlationid"
)

const (
	prompt = "> "

	saveFailedAlert = "Failed to save the product. Please try again."

	helpText = `commands:
  list                  fetch and show all products
  set <field> <value>   change a draft field (title, price, taxes, ads, discount, count, category)
  show                  show the draft, its total and the mode
  edit <n>              load row n into the draft and switch to update
  clear                 reset the draft
  submit                create or update from the draft
  delete <n>            delete row n
  delete-all            delete every listed row
  help                  show this help
  quit                  leave
`
)

var errQuit = errors.New("quit")

// Shell drives a form from line commands.
type Shell struct {
	form   *form.Form
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

func New(f *form.Form, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{
		form:   f,
		in:     in,
		out:    out,
		logger: logger.With(slog.String("service", "console")),
	}
}

// Run loads the product list and reads commands until quit, end of input or
// ctx is done. Request failures are printed as alerts and never end the
// session.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.exec(ctx, "list"); err != nil {
		s.alert(ctx, err)
	}

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)

		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return nil
		}

		err := s.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.alert(ctx, err)
		}
	}
}

func (s *Shell) exec(ctx context.Context, line string) error {
	cmd, args := splitCommand(line)
	ctx = correlationid.NewContext(ctx, correlationid.New())

	switch cmd {
	case "":
		return nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return nil
	case "quit", "exit":
		return errQuit
	case "list", "ls":
		if err := s.form.Load(ctx); err != nil {
			return err
		}
		return writeTable(s.out, s.form.Rows())
	case "show":
		return writeDraft(s.out, s.form.Draft(), s.form.Mode())
	case "set":
		return s.set(args)
	case "edit":
		n, err := rowIndex(args)
		if err != nil {
			return err
		}
		if err := s.form.Edit(n); err != nil {
			return err
		}
		return writeDraft(s.out, s.form.Draft(), s.form.Mode())
	case "clear":
		s.form.Clear()
		return nil
	case "submit", "create", "update":
		return s.submit(ctx)
	case "delete", "rm":
		n, err := rowIndex(args)
		if err != nil {
			return err
		}
		if err := s.form.Delete(ctx, n); err != nil {
			return err
		}
		return writeTable(s.out, s.form.Rows())
	case "delete-all":
		if err := s.form.DeleteAll(ctx); err != nil {
			return err
		}
		return writeTable(s.out, s.form.Rows())
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (s *Shell) set(args string) error {
	name, value, _ := strings.Cut(args, " ")
	if name == "" {
		return errors.New("usage: set <field> <value>")
	}

	field, err := form.ParseField(name)
	if err != nil {
		return err
	}
	if err := s.form.Set(field, strings.TrimSpace(value)); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "total: %s\n", s.form.Draft().Total())
	return nil
}

func (s *Shell) submit(ctx context.Context) error {
	editing := s.form.Mode().IsEditing()

	sent, err := s.form.Submit(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "submit product", slog.Any("error", err))
		fmt.Fprintf(s.out, "alert: %s\n", saveFailedAlert)
		return nil
	}
	if !sent {
		return nil
	}

	if editing {
		fmt.Fprintln(s.out, "Product updated successfully!")
	} else {
		fmt.Fprintln(s.out, "Product created successfully!")
	}
	return writeTable(s.out, s.form.Rows())
}

func (s *Shell) alert(ctx context.Context, err error) {
	s.logger.DebugContext(ctx, "command failed", slog.Any("error", err))
	fmt.Fprintf(s.out, "alert: %v\n", err)
}

func splitCommand(line string) (string, string) {
	cmd, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToLower(cmd), strings.TrimSpace(args)
}

// rowIndex turns a 1-based row number into a slice index.
func rowIndex(args string) (int, error) {
	n, err := strconv.Atoi(args)
	if err != nil {
		return 0, fmt.Errorf("row number expected, got %q", args)
	}
	return n - 1, nil
}
