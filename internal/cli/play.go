package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizren/internal/session"
	"quizren/internal/ui/quizui"
)

// runLive starts the interactive program; swapped out in tests.
var runLive = func(model tea.Model, stdout io.Writer) error {
	program := tea.NewProgram(model, tea.WithOutput(stdout))
	_, err := program.Run()
	return err
}

func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file")
		endpoint := fs.String("endpoint", "", "Quiz data endpoint URL")
		itemID := fs.String("item", "", "Quiz item id")
		uiMode := fs.String("ui", "", "UI mode: auto, live or plain")
		noColor := fs.Bool("no-color", false, "Disable color output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := resolveConfig(*configPath, *endpoint, *itemID, *uiMode, *noColor)
		if err != nil {
			fmt.Fprintf(stderr, "Configuration error: %v\n", err)
			return ExitUsage
		}
		decision, err := resolveUIMode(cfg.UI.Mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		document, rejections, err := loadQuiz(context.Background(), cfg)
		if err != nil {
			fmt.Fprintln(stderr, pipelineFailureMessage(err))
			return ExitError
		}
		logRejections(stderr, rejections)
		if len(document) == 0 {
			fmt.Fprintln(stderr, "No valid quiz questions found.")
			return ExitError
		}

		s := session.New(document)
		if !decision.useLive {
			fmt.Fprint(stdout, quizui.RenderStatic(document))
			fmt.Fprintln(stdout, "\nRun in a terminal (or with --ui live) to answer interactively.")
			return ExitOK
		}

		model := quizui.NewModel(s, quizui.Options{NoColor: cfg.UI.NoColor})
		if err := runLive(model, stdout); err != nil {
			fmt.Fprintf(stderr, "UI error: %v\n", err)
			return ExitError
		}
		answered, total := s.Summary()
		fmt.Fprintf(stdout, "Session %s: answered %d of %d questions.\n", s.ID(), answered, total)
		return ExitOK
	}
}
