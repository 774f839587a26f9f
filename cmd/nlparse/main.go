package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"campus-task-assistant/config"
	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
	"campus-task-assistant/internal/task/usecase"
	"campus-task-assistant/pkg/datemath"
	"campus-task-assistant/pkg/llmprovider"
	"campus-task-assistant/pkg/log"
)

var (
	tzFlag      string
	memberFlags []string

	// now is swapped in tests.
	now = time.Now

	// newParser builds the task use case for the task command.
	newParser = defaultParser
)

var rootCmd = &cobra.Command{
	Use:   "nlparse",
	Short: "Resolve due-date phrases and extract tasks from free text",
}

var dateCmd = &cobra.Command{
	Use:   "date <phrase>",
	Short: "Resolve a due-date phrase offline",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDate,
}

var taskCmd = &cobra.Command{
	Use:   "task <text>",
	Short: "Extract a structured task with the configured LLM",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTask,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "IANA timezone (default: local)")
	taskCmd.Flags().StringArrayVarP(&memberFlags, "member", "m", nil, "Known member name (repeatable)")
	rootCmd.AddCommand(dateCmd, taskCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type dateOutput struct {
	Date          string `json:"date"`
	ISODate       string `json:"iso_date"`
	Display       string `json:"display"`
	Confidence    string `json:"confidence"`
	OriginalInput string `json:"original_input"`
}

func runDate(cmd *cobra.Command, args []string) error {
	tz := tzFlag
	if tz == "" {
		tz = time.Local.String()
	}
	parser, err := datemath.NewParser(tz)
	if err != nil {
		return err
	}

	phrase := strings.Join(args, " ")
	base := now()
	pd, ok := parser.Parse(phrase, base)
	if !ok {
		return fmt.Errorf("could not understand %q as a date", phrase)
	}

	return writeJSON(cmd.OutOrStdout(), dateOutput{
		Date:          pd.Date.Format(time.RFC3339),
		ISODate:       parser.ToISODateString(pd.Date),
		Display:       parser.FormatDueDate(pd.Date, base),
		Confidence:    string(pd.Confidence),
		OriginalInput: pd.OriginalInput,
	})
}

func runTask(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	uc, err := newParser(ctx)
	if err != nil {
		return err
	}

	out, err := uc.Parse(ctx, model.Scope{UserID: "cli"}, task.ParseInput{
		Input:       strings.Join(args, " "),
		MemberNames: memberFlags,
		Timezone:    tzFlag,
	})
	if err != nil {
		return err
	}

	matches := out.AssigneeMatches
	if matches == nil {
		matches = []task.AssigneeMatch{}
	}
	return writeJSON(cmd.OutOrStdout(), struct {
		task.ParsedTask
		AssigneeMatches []task.AssigneeMatch `json:"assignee_matches"`
		OriginalInput   string               `json:"original_input"`
	}{out.Parsed, matches, out.OriginalInput})
}

// defaultParser wires the LLM stack from config. Storage and rate limiting
// are not needed for a one-shot parse.
func defaultParser(ctx context.Context) (task.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    "error",
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, err
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}

	return usecase.New(logger, llmprovider.NewManager(providers, managerCfg, logger), nil, nil, nil, usecase.Config{
		DefaultTimezone: cfg.Parser.DefaultTimezone,
		Temperature:     cfg.Parser.Temperature,
		MaxTokens:       cfg.Parser.MaxTokens,
	}), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
