package admin

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	prompt "github.com/c-bata/go-prompt"
)

const (
	defaultPromptPrefix = "> "
	maxHistoryEntries   = 128
)

// Console is a CLI-backed command source that reads operator input from an
// io.Reader (os.Stdin by default) and executes it against a Host. It keeps
// the teacher console's split between an interactive, completion-backed
// front end for a real terminal and a plain line scanner for piped/test
// input.
type Console struct {
	host    Host
	log     *slog.Logger
	reader  io.Reader
	history []string
}

// New returns a Console bound to host, reading from os.Stdin and logging
// through log (slog.Default() if nil).
func New(host Host, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{host: host, log: log, reader: os.Stdin}
}

// WithReader overrides the input source, used by tests to drive the
// console without a real terminal.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run consumes commands until ctx is cancelled or the reader hits EOF.
func (c *Console) Run(ctx context.Context) {
	if c.reader != os.Stdin {
		c.runScanner(ctx)
		return
	}
	c.runInteractive(ctx)
}

func (c *Console) runScanner(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		c.execute(strings.TrimSpace(scanner.Text()))
	}
}

func (c *Console) runInteractive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := prompt.Input(defaultPromptPrefix, c.complete,
			prompt.OptionTitle("mangband-core console"),
			prompt.OptionHistory(c.history),
			prompt.OptionPrefix(defaultPromptPrefix),
			prompt.OptionCompletionOnDown(),
			prompt.OptionMaxSuggestion(12),
		)
		c.execute(strings.TrimSpace(line))
	}
}

func (c *Console) execute(line string) {
	if line == "" {
		return
	}
	c.history = append(c.history, line)
	if len(c.history) > maxHistoryEntries {
		c.history = c.history[len(c.history)-maxHistoryEntries:]
	}
	out := ExecuteLine(c.host, line)
	for _, msg := range out.Messages() {
		c.log.Info(msg)
	}
	for _, err := range out.Errors() {
		c.log.Error(err)
	}
}

// complete offers command-name suggestions; the eleven-command surface has
// no per-parameter enum/target system to drive richer completion the way
// the teacher's generic cmd.Command framework does, so completion stops at
// the command name.
func (c *Console) complete(doc prompt.Document) []prompt.Suggest {
	word := strings.TrimPrefix(doc.GetWordBeforeCursor(), "/")
	if strings.Contains(doc.TextBeforeCursor(), " ") {
		return nil
	}
	cmds := Commands()
	suggestions := make([]prompt.Suggest, 0, len(cmds))
	for _, cmd := range cmds {
		suggestions = append(suggestions, prompt.Suggest{
			Text:        cmd.Name(),
			Description: cmd.Usage(),
		})
	}
	sort.Slice(suggestions, func(i, j int) bool { return suggestions[i].Text < suggestions[j].Text })
	return prompt.FilterHasPrefix(suggestions, word, true)
}
