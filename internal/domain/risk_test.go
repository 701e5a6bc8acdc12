package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRiskCategories(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    RiskCategory
	}{
		{name: "all conservative answers", answers: []int{1, 1, 1, 1, 1, 1}, want: RiskConservative},
		{name: "sum 7 stays conservative", answers: []int{1, 1, 1, 1, 1, 2}, want: RiskConservative},
		{name: "sum 8 crosses into moderate", answers: []int{1, 1, 1, 1, 2, 2}, want: RiskModerate},
		{name: "sum 12 stays moderate", answers: []int{2, 2, 2, 2, 2, 2}, want: RiskModerate},
		{name: "sum 13 crosses into aggressive", answers: []int{2, 2, 2, 2, 2, 3}, want: RiskAggressive},
		{name: "all aggressive answers", answers: []int{3, 3, 3, 3, 3, 3}, want: RiskAggressive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := ClassifyRisk(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, profile.Category)
		})
	}
}

func TestClassifyRiskAllocationsSumToOneHundred(t *testing.T) {
	for _, answers := range [][]int{
		{1, 1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2, 2},
		{3, 3, 3, 3, 3, 3},
	} {
		profile, err := ClassifyRisk(answers)
		require.NoError(t, err)
		alloc := profile.Allocation
		assert.Equal(t, 100, alloc.MoneyMarket+alloc.Bonds+alloc.Stocks)
		assert.Len(t, profile.ProductKeys, 3)
	}
}

func TestClassifyRiskPercentageExtremes(t *testing.T) {
	low, err := ClassifyRisk([]int{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 33.3, low.Percentage, 0.1)

	high, err := ClassifyRisk([]int{3, 3, 3, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 100.0, high.Percentage)
}

func TestClassifyRiskRejectsBadInput(t *testing.T) {
	_, err := ClassifyRisk([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrAssessmentIncomplete)

	_, err = ClassifyRisk([]int{1, 2, 3, 1, 2, 4})
	assert.ErrorIs(t, err, ErrInvalidRiskAnswer)

	_, err = ClassifyRisk([]int{0, 2, 3, 1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidRiskAnswer)
}

func TestRiskAssessmentCollectsSixAnswersThenClassifies(t *testing.T) {
	var quiz RiskAssessment

	_, err := quiz.Result()
	assert.ErrorIs(t, err, ErrAssessmentIncomplete)

	for _, score := range []int{3, 3, 3, 2, 3, 3} {
		require.NoError(t, quiz.Answer(score))
	}
	require.True(t, quiz.Complete())

	assert.ErrorIs(t, quiz.Answer(1), ErrAssessmentFull)

	profile, err := quiz.Result()
	require.NoError(t, err)
	assert.Equal(t, RiskAggressive, profile.Category)
}

func TestRiskAssessmentIsRestartable(t *testing.T) {
	var quiz RiskAssessment
	for i := 0; i < 6; i++ {
		require.NoError(t, quiz.Answer(3))
	}

	quiz.Reset()
	assert.Equal(t, 0, quiz.Answered())

	for i := 0; i < 6; i++ {
		require.NoError(t, quiz.Answer(1))
	}
	profile, err := quiz.Result()
	require.NoError(t, err)
	assert.Equal(t, RiskConservative, profile.Category)
}

func TestRiskAssessmentRejectsOutOfRangeScore(t *testing.T) {
	var quiz RiskAssessment
	assert.ErrorIs(t, quiz.Answer(0), ErrInvalidRiskAnswer)
	assert.ErrorIs(t, quiz.Answer(4), ErrInvalidRiskAnswer)
	assert.Equal(t, 0, quiz.Answered())
}
