package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/cryptoadvisor/internal/intent"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask QUESTION",
	Short: "자연어 질문에 답변",
	Long: `키워드 기반으로 질문을 분류하고 답변합니다.

분류 순서:
  1. 교육 (what is, explain, learn ...)
  2. 추천 (recommend, invest, buy ...)
  3. 자산 분석 (bitcoin, eth, solana ...)
  4. 시장 분석 (market, trend ...)
  5. 지속가능성 (green, sustainable ...)
  6. 도움말

Example:
  go run ./cmd/advisor ask "what is bitcoin"
  go run ./cmd/advisor ask "recommend a safe portfolio"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// askResult is the JSON shape of an answer
type askResult struct {
	Intent   intent.Intent `json:"intent"`
	Markdown string        `json:"markdown"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	in, md := intent.Ask(a.advisor, strings.Join(args, " "))
	return emit(cmd, askResult{Intent: in, Markdown: md}, md)
}
