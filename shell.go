package wordtrie

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oarkflow/json"
	"github.com/oarkflow/squealx"
	"github.com/oarkflow/xid"
	"go.uber.org/zap"
)

// Output formats understood by the shell.
const (
	OutputText = "text"
	OutputJSON = "json"
)

var errQuit = errors.New("quit")

// Result is the outcome of one shell command. In JSON mode it is written as
// one object per line.
type Result struct {
	Command    string   `json:"command"`
	Args       []string `json:"args,omitempty"`
	Dictionary string   `json:"dictionary"`
	Value      any      `json:"value"`
	Error      string   `json:"error,omitempty"`

	text string
}

type handler func(ctx context.Context, s *Shell, args []string) (Result, error)

// Shell executes line-oriented commands against the dictionaries of a Manager.
type Shell struct {
	manager *Manager
	current *Dictionary
	output  string
	prompt  string
	log     *zap.Logger
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// ShellWithOutput selects OutputText or OutputJSON.
func ShellWithOutput(format string) ShellOption {
	return func(s *Shell) {
		s.output = format
	}
}

// ShellWithPrompt sets the prompt printed before each command. An empty
// prompt disables it.
func ShellWithPrompt(prompt string) ShellOption {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// ShellWithLogger sets the logger.
func ShellWithLogger(l *zap.Logger) ShellOption {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// NewShell creates a shell working on the dictionary called current, which
// is created if missing.
func NewShell(m *Manager, current string, opts ...ShellOption) (*Shell, error) {
	s := &Shell{
		manager: m,
		output:  OutputText,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.output != OutputText && s.output != OutputJSON {
		return nil, fmt.Errorf("shell: unknown output format %q", s.output)
	}
	s.current = m.Open(current)
	return s, nil
}

// Run reads commands from in until EOF, a quit command or ctx is done.
// Command failures are reported on out and do not stop the loop.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := s.log.With(zap.String("session", xid.New().String()))
	log.Info("shell started", zap.String("dictionary", s.current.Name()))
	defer log.Info("shell stopped")

	scanner := bufio.NewScanner(in)
	for {
		if s.prompt != "" {
			fmt.Fprint(out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		res, err := s.Exec(ctx, fields[0], fields[1:]...)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			log.Debug("command failed", zap.String("command", fields[0]), zap.Error(err))
		}
		if werr := s.write(out, res); werr != nil {
			return werr
		}
	}
	return scanner.Err()
}

// Exec runs a single command. Failures are recorded in the Result as well
// as returned.
func (s *Shell) Exec(ctx context.Context, command string, args ...string) (Result, error) {
	cmd := strings.ToLower(command)
	h, ok := commands[cmd]
	var (
		res Result
		err error
	)
	if !ok {
		err = fmt.Errorf("unknown command %q, try help", command)
	} else {
		res, err = h(ctx, s, args)
	}
	res.Command = cmd
	res.Args = args
	res.Dictionary = s.current.Name()
	if err != nil && !errors.Is(err, errQuit) {
		res.Error = err.Error()
		res.text = "error: " + err.Error()
	}
	return res, err
}

func (s *Shell) write(out io.Writer, res Result) error {
	if s.output == OutputJSON {
		return json.NewEncoder(out).Encode(res)
	}
	if res.text == "" {
		return nil
	}
	_, err := fmt.Fprintln(out, res.text)
	return err
}

var commands = map[string]handler{
	"add":        cmdAdd,
	"insert":     cmdAdd,
	"search":     cmdSearch,
	"find":       cmdSearch,
	"prefix":     cmdPrefix,
	"startswith": cmdPrefix,
	"delete":     cmdDelete,
	"del":        cmdDelete,
	"remove":     cmdDelete,
	"load":       cmdLoad,
	"loadsql":    cmdLoadSQL,
	"use":        cmdUse,
	"list":       cmdList,
	"stats":      cmdStats,
	"help":       cmdHelp,
	"quit":       cmdQuit,
	"exit":       cmdQuit,
}

func cmdAdd(_ context.Context, s *Shell, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errors.New("add needs at least one word")
	}
	n, err := s.current.Add(args...)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: n, text: fmt.Sprintf("added %d", n)}, nil
}

func cmdSearch(_ context.Context, s *Shell, args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, errors.New("search needs exactly one word")
	}
	ok, err := s.current.Contains(args[0])
	if err != nil {
		return Result{}, err
	}
	return Result{Value: ok, text: fmt.Sprint(ok)}, nil
}

func cmdPrefix(_ context.Context, s *Shell, args []string) (Result, error) {
	if len(args) > 1 {
		return Result{}, errors.New("prefix takes at most one prefix")
	}
	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}
	ok, err := s.current.HasPrefix(prefix)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: ok, text: fmt.Sprint(ok)}, nil
}

func cmdDelete(_ context.Context, s *Shell, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errors.New("delete needs at least one word")
	}
	n, err := s.current.Remove(args...)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: n, text: fmt.Sprintf("removed %d", n)}, nil
}

func cmdLoad(ctx context.Context, s *Shell, args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, errors.New("load needs exactly one file")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return Result{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	stats, err := s.current.LoadText(ctx, f)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Value: stats,
		text:  fmt.Sprintf("loaded %d words (%d new) from %s", stats.Words, stats.Added, args[0]),
	}, nil
}

func cmdLoadSQL(ctx context.Context, s *Shell, args []string) (Result, error) {
	if len(args) < 4 {
		return Result{}, errors.New("loadsql needs a driver, database, column and query")
	}
	cfg := squealx.Config{Driver: args[0], Database: args[1]}
	stats, err := s.current.LoadSQL(ctx, cfg, strings.Join(args[3:], " "), args[2])
	if err != nil {
		return Result{}, err
	}
	return Result{
		Value: stats,
		text:  fmt.Sprintf("loaded %d words (%d new) from %d rows", stats.Words, stats.Added, stats.Lines),
	}, nil
}

func cmdUse(_ context.Context, s *Shell, args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, errors.New("use needs exactly one dictionary name")
	}
	s.current = s.manager.Open(args[0])
	return Result{Value: args[0], text: "using " + args[0]}, nil
}

func cmdList(_ context.Context, s *Shell, _ []string) (Result, error) {
	names := s.manager.List()
	return Result{Value: names, text: strings.Join(names, "\n")}, nil
}

func cmdStats(_ context.Context, s *Shell, _ []string) (Result, error) {
	st := s.current.Stats()
	return Result{
		Value: st,
		text:  fmt.Sprintf("%s: %d words, %d nodes, fingerprint %016x", st.Name, st.Words, st.Nodes, st.Fingerprint),
	}, nil
}

const helpText = `commands:
  add|insert <word>...        store words
  search|find <word>          exact match
  prefix|startswith [prefix]  prefix match
  delete|del|remove <word>... delete words
  load <file>                 add every word found in a text file
  loadsql <driver> <database> <column> <query>
                              add every word found in a column of a query
  use <name>                  switch dictionary, creating it if needed
  list                        list dictionaries
  stats                       word and node counts of the current dictionary
  quit|exit                   leave`

func cmdHelp(_ context.Context, _ *Shell, _ []string) (Result, error) {
	return Result{Value: helpText, text: helpText}, nil
}

func cmdQuit(_ context.Context, _ *Shell, _ []string) (Result, error) {
	return Result{}, errQuit
}
