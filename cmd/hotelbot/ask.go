package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	chatdomain "pethotel/internal/chat/domain"
)

func askCmd(state *cliState) *cobra.Command {
	var execute bool

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question, or start an interactive session when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := state.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			answer := func(question string) error {
				result := app.Matcher.Match(question)
				printMatch(out, result)

				if execute && result.Status == chatdomain.StatusSuccess {
					q, _ := app.Matcher.Lookup(question)
					data, err := json.Marshal(app.Executor.Execute(cmd.Context(), string(q.QueryType())))
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "  result: %s\n", data)
				}
				return nil
			}

			if len(args) == 1 {
				return answer(args[0])
			}

			fmt.Fprintln(out, "Bem-vindo ao Chatbot de IA para o Hotel de Pets!")
			fmt.Fprintln(out, "Perguntas que você pode fazer:")
			for _, q := range app.Matcher.Questions() {
				fmt.Fprintf(out, "- %s\n", q)
			}
			fmt.Fprintln(out, "Digite 'sair' para encerrar.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "\nSua pergunta: ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := scanner.Text()
				if isExit(line) {
					return nil
				}
				if err := answer(line); err != nil {
					return err
				}
			}
		},
	}

	cmd.Flags().BoolVar(&execute, "execute", false, "also run the matching aggregation")
	return cmd
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "sair", "exit", "quit":
		return true
	}
	return false
}

func printMatch(out io.Writer, r chatdomain.MatchResult) {
	fmt.Fprintln(out, "Resposta do Chatbot:")
	fmt.Fprintf(out, "  original_question: %s\n", r.OriginalQuestion)
	fmt.Fprintf(out, "  query_text: %s\n", deref(r.QueryText))
	fmt.Fprintf(out, "  restated_question: %s\n", deref(r.RestatedQuestion))
	fmt.Fprintf(out, "  status: %s\n", r.Status)
	if r.Message != "" {
		fmt.Fprintf(out, "  message: %s\n", r.Message)
	}
}

func deref(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
