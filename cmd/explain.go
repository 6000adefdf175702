package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	pnl "github.com/kosarinj/robinhood-pnl-tracker-sub001"
	"github.com/kosarinj/robinhood-pnl-tracker-sub001/assist"
	"github.com/kosarinj/robinhood-pnl-tracker-sub001/renderer"
	"google.golang.org/genai"
)

// explainCmd holds the flags for the 'explain' subcommand.
type explainCmd struct {
	date string
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "ask the assistant about the current report" }
func (*explainCmd) Usage() string {
	return `rhpnl explain [-d <date>] [question...]

  Computes the position report and starts an assistant session grounded
  on it. With a question on the command line it answers once and exits,
  otherwise it runs an interactive session. Type 'bye' to exit.

  Requires Gemini credentials in the environment (GEMINI_API_KEY or
  GOOGLE_API_KEY).
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", pnl.Today().String(), "Date to report on. See the user manual for supported date formats.")
}

const prompt = "explain> "

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := pnl.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	reports, err := computeReports(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	explainer := assist.NewExplainer(cfg.Assist.Model)
	if err := explainer.Start(ctx, client, renderer.PositionsMarkdown(reports, on)); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the assistant:", err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		answer, err := explainer.Ask(ctx, strings.Join(f.Args(), " "))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		printMarkdown(answer)
		return subcommands.ExitSuccess
	}

	if err := repl(ctx, explainer); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// repl runs the interactive question loop until 'bye' or EOF.
func repl(ctx context.Context, explainer *assist.Explainer) error {
	fmt.Println("Welcome to rhpnl explain. Type 'bye' to exit.")
	r := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt)
		input, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}
		answer, err := explainer.Ask(ctx, input)
		if err != nil {
			return err
		}
		printMarkdown(answer)
	}
}
