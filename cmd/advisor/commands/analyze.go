package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/wonny/cryptoadvisor/internal/advisor"
	"github.com/wonny/cryptoadvisor/internal/report"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze SYMBOL",
	Short: "단일 자산 분석",
	Long: `하나의 자산에 대한 지표, 점수 구성, 투자 의견을 출력합니다.
점수는 항상 medium 성향 기준으로 계산됩니다. 심볼은 대소문자를 구분하지 않습니다.

Example:
  go run ./cmd/advisor analyze BTC
  go run ./cmd/advisor analyze eth --format terminal`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	an, err := a.advisor.Analyze(args[0])
	if errors.Is(err, advisor.ErrUnknownAsset) {
		return emitMessage(cmd, report.UnknownAsset(args[0]))
	}
	if err != nil {
		return err
	}

	return emit(cmd, an, report.Analysis(an))
}
