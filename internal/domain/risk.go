package domain

type RiskCategory string

const (
	RiskConservative RiskCategory = "conservative"
	RiskModerate     RiskCategory = "moderate"
	RiskAggressive   RiskCategory = "aggressive"
)

const (
	riskQuestionCount = 6
	riskMaxScore      = 3
)

// Allocation is the recommended portfolio split for a risk category, in whole
// percent. The three fields sum to 100 for every category.
type Allocation struct {
	MoneyMarket int
	Bonds       int
	Stocks      int
}

// RiskProfile is the outcome of a completed assessment. Display-only: nothing
// writes it back into the user's profile; persisting it is the caller's call.
type RiskProfile struct {
	Category    RiskCategory
	Percentage  float64
	Allocation  Allocation
	ProductKeys []string
}

// ClassifyRisk maps six answers scored 1 (conservative) to 3 (aggressive)
// onto a risk category. The score percentage is sum/18; the 40% and 70%
// boundaries belong to the lower category, so a sum landing exactly on either
// threshold classifies down, never up.
func ClassifyRisk(answers []int) (RiskProfile, error) {
	if len(answers) != riskQuestionCount {
		return RiskProfile{}, ErrAssessmentIncomplete
	}

	sum := 0
	for _, a := range answers {
		if a < 1 || a > riskMaxScore {
			return RiskProfile{}, ErrInvalidRiskAnswer
		}
		sum += a
	}

	percentage := 100 * float64(sum) / float64(riskQuestionCount*riskMaxScore)

	switch {
	case percentage <= 40:
		return RiskProfile{
			Category:    RiskConservative,
			Percentage:  percentage,
			Allocation:  Allocation{MoneyMarket: 60, Bonds: 30, Stocks: 10},
			ProductKeys: []string{"risk.product.money_market", "risk.product.treasury_bills", "risk.product.fixed_deposit"},
		}, nil
	case percentage <= 70:
		return RiskProfile{
			Category:    RiskModerate,
			Percentage:  percentage,
			Allocation:  Allocation{MoneyMarket: 30, Bonds: 30, Stocks: 40},
			ProductKeys: []string{"risk.product.balanced_fund", "risk.product.corporate_bonds", "risk.product.index_fund"},
		}, nil
	default:
		return RiskProfile{
			Category:    RiskAggressive,
			Percentage:  percentage,
			Allocation:  Allocation{MoneyMarket: 10, Bonds: 20, Stocks: 70},
			ProductKeys: []string{"risk.product.equity_fund", "risk.product.growth_stocks", "risk.product.dollar_fund"},
		}, nil
	}
}

// RiskAssessment accumulates answers one question at a time. Once the sixth
// answer lands the result is available; Reset lets the user retake the quiz
// from question one.
type RiskAssessment struct {
	answers []int
}

func (r *RiskAssessment) Answer(score int) error {
	if score < 1 || score > riskMaxScore {
		return ErrInvalidRiskAnswer
	}
	if len(r.answers) >= riskQuestionCount {
		return ErrAssessmentFull
	}
	r.answers = append(r.answers, score)
	return nil
}

func (r *RiskAssessment) Answered() int { return len(r.answers) }

func (r *RiskAssessment) Complete() bool { return len(r.answers) == riskQuestionCount }

func (r *RiskAssessment) Reset() { r.answers = nil }

// Result classifies the collected answers. ErrAssessmentIncomplete before all
// six are in.
func (r *RiskAssessment) Result() (RiskProfile, error) {
	return ClassifyRisk(r.answers)
}
