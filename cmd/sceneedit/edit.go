package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iw2rmb/sceneedit/editor"
	"github.com/iw2rmb/sceneedit/internal/state"
	"github.com/iw2rmb/sceneedit/plugin"
	"github.com/iw2rmb/sceneedit/project"
	"github.com/iw2rmb/sceneedit/session"
)

func runEdit(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() != 2 {
		return errors.New("expected PROJECT and SCENE arguments")
	}
	path, unitID := cmd.Args().Get(0), cmd.Args().Get(1)

	// console lines would corrupt the full-screen display
	quiet := env.Cfg.Logging.Quiet()
	log, err := quiet.Prepare()
	if err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	defer func() { _ = log.Sync() }()

	terminal := project.NewTerminalPrompter()
	proj, err := project.Load(path, terminal, log)
	if err != nil {
		return err
	}
	mgr, err := plugin.NewManagerFromConfig(proj, &env.Cfg.Editor, log)
	if err != nil {
		return err
	}

	status := &editor.Status{}
	sess, err := mgr.Open(unitID, session.WithStatus(status.Set))
	if err != nil {
		return fmt.Errorf("unable to open scene %q: %w", unitID, err)
	}
	unit, _ := proj.Unit(unitID)

	prompt := editor.NewPrompt()
	proj.SetPrompter(prompt)
	theme := themeFrom(&env.Cfg.Editor.Colors)
	ed := editor.New(sess, editor.Config{
		Title:    fmt.Sprintf("%s - %s, Scene ID %s", unit.Title, proj.Title(), unitID),
		Theme:    &theme,
		Prompt:   prompt,
		Status:   status,
		OnChange: logEdits(log),
	})

	log.Debug("Editing scene", zap.String("project", path), zap.String("scene", unitID))
	final, err := tea.NewProgram(newModel(ed, env.Cfg.Editor.Window), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	proj.SetPrompter(terminal)
	if err != nil {
		return multierr.Append(fmt.Errorf("editor failed: %w", err), mgr.CloseAll())
	}

	// questions about unapplied changes are asked on the terminal
	if m, ok := final.(model); ok && m.closing != nil && m.closing.Apply {
		err = sess.ApplyAndClose()
	}
	err = multierr.Append(err, mgr.Quit(env.Cfg, env.CfgPath))
	if er := proj.Save(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to save project: %w", er))
	}
	return err
}
