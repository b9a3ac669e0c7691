package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/cryptoadvisor/internal/report"
)

// marketCmd represents the market command
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "시장 요약 (상위 수익률, 시총 구간, 지속가능성)",
	Long: `카탈로그 전체의 시장 요약을 출력합니다.

- 30일 수익률 상위 5개
- 시가총액 구간별 자산 수 (>$50B, $10B-$50B, <$10B)
- 지속가능성 점수 7 이상 자산

Example:
  go run ./cmd/advisor market
  go run ./cmd/advisor market --format json`,
	Args: cobra.NoArgs,
	RunE: runMarket,
}

// sustainabilityCmd represents the sustainability command
var sustainabilityCmd = &cobra.Command{
	Use:   "sustainability",
	Short: "지속가능 자산 리포트",
	Long: `지속가능성 점수 7 이상 자산을 점수 내림차순으로 출력합니다.

Example:
  go run ./cmd/advisor sustainability`,
	Args: cobra.NoArgs,
	RunE: runSustainability,
}

func init() {
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(sustainabilityCmd)
}

func runMarket(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	sum := a.advisor.MarketSummary()
	return emit(cmd, sum, report.Market(sum))
}

func runSustainability(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	entries := a.advisor.SustainabilityReport()
	return emit(cmd, entries, report.Sustainability(entries))
}
