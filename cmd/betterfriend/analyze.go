package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/config"
	"github.com/MikeSquared-Agency/betterfriend/internal/processor"
	"github.com/MikeSquared-Agency/betterfriend/internal/suggestion"
)

func AnalyzeCmd() *cobra.Command {
	var goal string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a transcript from a file or stdin and print the result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := analysis.ParseGoal(goal)
			if err != nil {
				return err
			}
			text, err := readTranscript(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			loadEnv()
			cfg := config.Load()
			// Logs go to stderr so stdout stays valid JSON.
			logger := setupLogging(cfg.LogLevel, cmd.ErrOrStderr())

			lex, err := loadLexicon(cfg.LexiconPath)
			if err != nil {
				return err
			}
			analyzer, _ := buildAnalyzer(cfg, lex, logger)

			b, err := processor.New(analyzer, nil, nil, logger).Analyze(cmd.Context(), text, g, processor.TransportCLI)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), b, pretty)
		},
	}
	cmd.Flags().StringVarP(&goal, "goal", "g", string(analysis.GoalGeneral), "Conversation goal (reconnect, clarify, apologize, boundary, conflict, general)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	return cmd
}

func ScriptsCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "Print the de-escalation scripts for a style",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := suggestion.Scripts(style)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n\n", set.Label, set.Description)
			for _, s := range set.Scripts {
				fmt.Fprintf(out, "- %s\n", s)
			}
			fmt.Fprintln(out)
			for i, step := range set.Steps {
				fmt.Fprintf(out, "%d. %s: %s\n", i+1, step.Title, step.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", string(suggestion.DefaultScriptStyle), "Script style (concise, warm, professional)")
	return cmd
}

// readTranscript reads the named file, or stdin when no file or "-" is given.
func readTranscript(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
