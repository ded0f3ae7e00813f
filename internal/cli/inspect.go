package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func runInspect(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := resolveConfig(*configPath, *endpoint, *itemID, "plain", false)
		if err != nil {
			fmt.Fprintf(stderr, "Configuration error: %v\n", err)
			return ExitUsage
		}

		document, rejections, err := loadQuiz(context.Background(), cfg)
		if err != nil {
			fmt.Fprintln(stderr, pipelineFailureMessage(err))
			return ExitError
		}
		logRejections(stderr, rejections)

		fmt.Fprintf(stdout, "Item %s: %d valid question(s), %d rejection(s)\n", cfg.ItemID, len(document), len(rejections))
		for i, question := range document {
			fmt.Fprintf(stdout, "\n%d. %s\n", i+1, question.Prompt)
			for j, choice := range question.Choices {
				marker := " "
				if choice.Correct {
					marker = "*"
				}
				fmt.Fprintf(stdout, "  %s %d) [%s] %s\n", marker, j+1, choice.ID, choice.Text)
			}
			fmt.Fprintf(stdout, "  correct: %s\n", question.Feedback.Correct)
			fmt.Fprintf(stdout, "  incorrect: %s\n", question.Feedback.Incorrect)
		}
		if len(document) == 0 {
			fmt.Fprintln(stderr, "No valid quiz questions found.")
			return ExitError
		}
		return ExitOK
	}
}
