package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/iw2rmb/sceneedit/internal/state"
	"github.com/iw2rmb/sceneedit/markup"
	"github.com/iw2rmb/sceneedit/project"
)

func runCount(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("nothing to count, expected FILE arguments")
	}

	p := message.NewPrinter(env.Cfg.Editor.Language())
	out := output(cmd)

	total := 0
	for _, fname := range cmd.Args().Slice() {
		n, err := countFile(out, p, fname, env.Log)
		if err != nil {
			return err
		}
		total += n
	}
	if cmd.Args().Len() > 1 {
		p.Fprintf(out, "total: %d words\n", total)
	}
	return nil
}

func countFile(out io.Writer, p *message.Printer, fname string, log *zap.Logger) (int, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		proj, err := project.Load(fname, nil, log)
		if err != nil {
			return 0, err
		}
		total := 0
		for _, u := range proj.Units() {
			n := markup.CountWords(u.Content)
			p.Fprintf(out, "%s: %s (%s): %d words\n", fname, u.Title, u.ID, n)
			total += n
		}
		return total, nil
	default:
		data, err := os.ReadFile(fname)
		if err != nil {
			return 0, fmt.Errorf("unable to read '%s': %w", fname, err)
		}
		n := markup.CountWords(string(data))
		p.Fprintf(out, "%s: %d words\n", fname, n)
		return n, nil
	}
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
