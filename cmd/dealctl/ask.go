package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"deal-tracker/internal/assistant"
	"deal-tracker/internal/assistant/memory"
	assistantUC "deal-tracker/internal/assistant/usecase"
	"deal-tracker/internal/model"
	"deal-tracker/pkg/llmprovider"
)

const cliUser = "dealctl"

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask the deal advisor about the stored portfolio",
		Long: "Asks one question, or with --interactive keeps a conversation going, one question per line,\n" +
			"until EOF or an empty line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			interactive, _ := cmd.Flags().GetBool("interactive")
			if !interactive && len(args) == 0 {
				return fmt.Errorf("a question is required unless --interactive is set")
			}

			a, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			providers, err := llmprovider.InitializeProviders(&a.cfg.LLM)
			if err != nil {
				return err
			}
			llm := llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: a.cfg.LLM.FallbackEnabled,
				RetryAttempts:   a.cfg.LLM.RetryAttempts,
				RetryDelay:      a.cfg.LLM.RetryDelay,
				MaxTotalTimeout: a.cfg.LLM.MaxTotalTimeout,
			}, a.l)

			uc := assistantUC.New(a.l, llm, a.deals, assistantUC.Config{
				Memory: memory.Config{Model: a.cfg.Assistant.Model, MaxSlots: a.cfg.Assistant.MaxSlots},
			})

			if !interactive {
				return askOnce(ctx, uc, strings.Join(args, " "), cmd.OutOrStdout())
			}
			return converse(ctx, uc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolP("interactive", "i", false, "Read questions from stdin and keep the conversation")
	return cmd
}

func askOnce(ctx context.Context, uc assistant.UseCase, question string, out io.Writer) error {
	res, err := uc.Ask(ctx, model.Scope{UserID: cliUser}, assistant.AskInput{Data: question})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Result)
	return nil
}

// converse runs one conversation over in. A failed question is reported and the loop goes on.
func converse(ctx context.Context, uc assistant.UseCase, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		question := strings.TrimSpace(sc.Text())
		if question == "" {
			return nil
		}
		if err := askOnce(ctx, uc, question, out); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}
