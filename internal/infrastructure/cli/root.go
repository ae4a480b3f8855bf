package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/hey-go/internal/app"
	configvalidator "github.com/doeshing/hey-go/internal/application/config"
	"github.com/doeshing/hey-go/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	Version string
	Paths   app.Paths
	Streams Streams
}

type rootFlags struct {
	explain    bool
	runNow     bool
	noRun      bool
	copy       bool
	history    bool
	historyN   int
	endpoint   string
	model      string
	test       bool
	saveConfig bool
}

// NewRootCmd wires the cobra root command. The config file is read first so
// flag defaults reflect it in --help.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	streams := opts.Streams
	container, err := app.BuildContainer(ctx, app.Options{
		Paths:   opts.Paths,
		Stdin:   streams.In,
		Stdout:  streams.Out,
		Stderr:  streams.Err,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, err
	}
	container.QueryService.Input = newLineReader(streams)
	if streams.ErrTTY {
		container.QueryService.LLM = newSpinningClient(container.LLMClient, streams.Err)
	}

	var f rootFlags
	root := &cobra.Command{
		Use:   "hey [query...]",
		Short: "Shell-native natural language CLI assistant",
		Long: "hey turns a natural-language request into a shell command using an\n" +
			"OpenAI-compatible chat-completion endpoint, then optionally copies,\n" +
			"runs and records it.",
		Args:          cobra.ArbitraryArgs,
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &runner{cmd: cmd, container: container, streams: streams, flags: f}
			return r.run(args)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&f.explain, "explain", "e", false, "Append explanation after command")
	flags.BoolVarP(&f.runNow, "run", "r", false, "Execute the command without prompting")
	flags.BoolVar(&f.noRun, "no-run", false, "Never prompt to run the command")
	flags.BoolVarP(&f.copy, "copy", "c", false, "Copy the command to clipboard")
	flags.BoolVarP(&f.history, "history", "H", false, "Print recent history and exit")
	flags.IntVar(&f.historyN, "history-n", domain.DefaultHistoryLimit, "Number of history entries to show (0 for all)")
	flags.StringVar(&f.endpoint, "endpoint", container.Config.ResolveEndpoint(), "LLM endpoint URL")
	flags.StringVar(&f.model, "model", container.Config.GetModel(), "Model name sent in payload")
	flags.BoolVar(&f.test, "test", false, "Test the connection to the LLM endpoint and exit")
	flags.BoolVar(&f.saveConfig, "save-config", false, "Persist --endpoint/--model to the config file and exit")

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return &ExitError{Code: 2, Err: err}
	})
	return root, nil
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, opts Options, args []string) int {
	root, err := NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintf(opts.Streams.Err, "Error: %v\n", err)
		return 1
	}
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err = root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(opts.Streams.Err, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(opts.Streams.Err, "Error: %v\n", err)
	return 1
}

type runner struct {
	cmd       *cobra.Command
	container *app.Container
	streams   Streams
	flags     rootFlags
}

func (r *runner) run(args []string) error {
	defer func() {
		if err := r.container.Close(); err != nil {
			r.container.Logger.Debug("close failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	switch {
	case r.flags.saveConfig:
		return r.saveConfig()
	case r.flags.test:
		return r.ping()
	case r.flags.history:
		return r.printHistory()
	}

	prompt, err := buildQuery(args, r.streams.In, !r.streams.InTTY)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("read stdin: %w", err)}
	}
	if strings.TrimSpace(prompt) == "" {
		_ = r.cmd.Help()
		return &ExitError{Code: 1}
	}

	_, err = r.container.QueryService.Run(domain.QueryRequest{
		Context:     r.cmd.Context(),
		Prompt:      prompt,
		Explain:     r.flags.explain,
		RunNow:      r.flags.runNow,
		NoRun:       r.flags.noRun,
		Copy:        r.flags.copy,
		Endpoint:    r.flags.endpoint,
		Model:       r.flags.model,
		Interactive: r.streams.OutTTY,
		StdinPiped:  !r.streams.InTTY,
	})
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

func (r *runner) ping() error {
	result, err := r.container.DoctorService.Run(r.cmd.Context(), r.flags.endpoint, r.flags.model)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	renderPing(r.streams.Out, r.streams.Err, r.flags.endpoint, result)
	if !result.OK {
		return &ExitError{Code: 1}
	}
	return nil
}

func (r *runner) printHistory() error {
	entries, err := r.container.HistoryStore.Recent(r.flags.historyN)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("read history: %w", err)}
	}
	renderHistory(r.streams.Out, entries)
	return nil
}

func (r *runner) saveConfig() error {
	cfg := r.container.Config
	changed := r.cmd.Flags().Changed
	if changed("endpoint") {
		cfg.Endpoint = r.flags.endpoint
	}
	if changed("model") {
		cfg.Model = r.flags.model
	}
	if err := configvalidator.Validate(cfg); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	loader := r.container.ConfigLoader
	if err := loader.Save(cfg); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("save config: %w", err)}
	}
	fmt.Fprintf(r.streams.Out, "Saved config to %s\n", loader.Path())
	return nil
}

// buildQuery joins the positional words and, when stdin is piped, the piped
// text. Words plus stdin become "<words>\n<stdin>"; stdin alone is the query.
func buildQuery(args []string, stdin io.Reader, piped bool) (string, error) {
	words := strings.Join(args, " ")
	if !piped || stdin == nil {
		return words, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	switch {
	case text == "":
		return words, nil
	case len(args) > 0:
		return words + "\n" + text, nil
	default:
		return text, nil
	}
}
