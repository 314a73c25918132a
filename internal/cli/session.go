package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/cipherkit"
	"github.com/aretw0/cipherkit/internal/presentation/tui"
	"github.com/aretw0/cipherkit/pkg/runner"
)

const defaultWidth = 80

// RunSession executes an interactive session loop until quit or EOF.
func RunSession(env *Env, opts RunOptions) error {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	mgr := env.Engine.NewManager()
	r := runner.NewRunner(createRunnerOptions(env, opts)...)

	err := r.Run(ctx, mgr)
	if sig := interruptSignal(ctx); sig != nil {
		env.Logger.Info("Session Interrupted", "signal", sig.String())
	}
	return handleExecutionError(err)
}

// createRunnerOptions prepares the functional options for the Runner.
func createRunnerOptions(env *Env, opts RunOptions) []runner.Option {
	runnerOpts := []runner.Option{
		runner.WithLogger(env.Logger),
		runner.WithSessionID(opts.SessionID),
	}
	if env.Metrics != nil {
		runnerOpts = append(runnerOpts, runner.WithStats(env.Metrics.Summary))
	}

	if opts.JSON {
		return append(runnerOpts, runner.WithInputHandler(runner.NewJSONHandler(opts.Stdin, opts.Stdout)))
	}

	outFile, _ := opts.Stdout.(*os.File)
	interactive := tui.IsTerminal(outFile)
	if interactive && env.Config.Banner && !opts.NoBanner {
		tui.PrintBanner(opts.Stdout, tui.Profile(outFile))
		printSystemMessage(opts.Stdout, "cipherkit %s. Type text to transform it, :methods for help, :quit to leave.", strings.TrimSpace(cipherkit.Version))
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithMaxInputSize(env.Config.MaxInputSize),
		runner.WithTextHandlerFormatter(tui.NewFormatter(tui.Profile(outFile))),
	}
	if !interactive {
		handlerOpts = append(handlerOpts, runner.WithPrompt(""))
	}

	style := tui.ResolveStyle(env.Config.Style, outFile)
	render, err := tui.NewRenderer(style, tui.Width(outFile, defaultWidth))
	if err != nil {
		env.Logger.Warn("Markdown renderer unavailable", "style", style, "err", err)
	} else {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(render))
	}

	return append(runnerOpts, runner.WithInputHandler(runner.NewTextHandler(opts.Stdin, opts.Stdout, handlerOpts...)))
}

// writeLine prints s followed by a newline unless it already ends with one.
func writeLine(w io.Writer, s string) error {
	if strings.HasSuffix(s, "\n") {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
