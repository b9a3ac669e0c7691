package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputFormat  string
	catalogSource string
	catalogPath   string
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Crypto advisor - 위험 성향별 암호화폐 추천 엔진",
	Long: `Crypto Advisor CLI

고정 카탈로그를 기반으로 한 결정적(deterministic) 암호화폐 추천 엔진.
위험 성향(low|medium|high)에 따라 필터링, 점수화, 랭킹, 비중 배분을 수행합니다.

Usage:
  go run ./cmd/advisor [command]

Examples:
  go run ./cmd/advisor recommend --tolerance low
  go run ./cmd/advisor analyze BTC --format terminal
  go run ./cmd/advisor ask "what is bitcoin"
  go run ./cmd/advisor catalog validate ./catalog.yaml
  go run ./cmd/advisor api`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "markdown", "output format (markdown|terminal|html|json)")
	rootCmd.PersistentFlags().StringVar(&catalogSource, "source", "", "catalog source override (embedded|file|postgres|http)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog YAML path (implies --source file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
