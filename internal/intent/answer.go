package intent

import (
	"github.com/wonny/cryptoadvisor/internal/advisor"
	"github.com/wonny/cryptoadvisor/internal/report"
)

// Answer produces the markdown reply for a routed intent.
// Domain errors become user-facing messages rather than failures.
func Answer(adv *advisor.Advisor, in Intent) string {
	switch in.Kind {
	case KindEducation:
		return report.Education(in.Topic)

	case KindRecommendation:
		rec, err := adv.Recommend(string(in.Tolerance))
		if err != nil {
			return report.NoSuitableAssets(in.Tolerance)
		}
		return report.Recommendation(rec)

	case KindAnalysis:
		an, err := adv.Analyze(in.Symbol)
		if err != nil {
			return report.UnknownAsset(in.Symbol)
		}
		return report.Analysis(an)

	case KindMarket:
		return report.Market(adv.MarketSummary())

	case KindSustainability:
		return report.Sustainability(adv.SustainabilityReport())

	default:
		return report.Help()
	}
}

// Ask routes question and answers it in one step
func Ask(adv *advisor.Advisor, question string) (Intent, string) {
	in := Route(question)
	return in, Answer(adv, in)
}
