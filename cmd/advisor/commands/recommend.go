package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/wonny/cryptoadvisor/internal/advisor"
	"github.com/wonny/cryptoadvisor/internal/profile"
	"github.com/wonny/cryptoadvisor/internal/report"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "위험 성향별 추천 및 포트폴리오 비중",
	Long: `위험 성향에 맞는 상위 5개 자산과 포트폴리오 비중을 출력합니다.

파이프라인:
  tolerance → profile → eligible → ranked → top 5 → allocation

알 수 없는 tolerance 값은 medium으로 처리됩니다.

Example:
  go run ./cmd/advisor recommend --tolerance low
  go run ./cmd/advisor recommend -t high --format json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

var tolerance string

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVarP(&tolerance, "tolerance", "t", string(profile.DefaultTolerance), "risk tolerance (low|medium|high)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.advisor.Recommend(tolerance)
	if errors.Is(err, advisor.ErrNoSuitableAssets) {
		tol, _ := profile.NewRegistry().Resolve(tolerance)
		return emitMessage(cmd, report.NoSuitableAssets(tol))
	}
	if err != nil {
		return err
	}

	return emit(cmd, rec, report.Recommendation(rec))
}
