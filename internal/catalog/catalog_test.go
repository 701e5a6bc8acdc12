package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobofi/kobo-cli/internal/domain"
)

func TestQuizQuestionsAlwaysSixWithThreeOptions(t *testing.T) {
	for _, lang := range domain.SupportedLanguages() {
		qs := QuizQuestions(lang)
		require.Len(t, qs, 6, "language %s", lang)
		for _, q := range qs {
			assert.NotEmpty(t, q.Prompt)
			for _, opt := range q.Options {
				assert.NotEmpty(t, opt)
			}
		}
	}
}

func TestQuizQuestionsFallBackToEnglish(t *testing.T) {
	assert.Equal(t, QuizQuestions(domain.LanguageEnglish), QuizQuestions(domain.LanguagePidgin))
	assert.NotEqual(t, QuizQuestions(domain.LanguageEnglish), QuizQuestions(domain.LanguageFrench))
}

func TestFindCircle(t *testing.T) {
	circle, ok := FindCircle("cir-2")
	require.True(t, ok)
	assert.Equal(t, "Accra Traders Chama", circle.Name)

	_, ok = FindCircle("cir-99")
	assert.False(t, ok)
}

func TestFindArticle(t *testing.T) {
	article, ok := FindArticle("art-3")
	require.True(t, ok)
	assert.Equal(t, "investing", article.Topic)

	_, ok = FindArticle("nope")
	assert.False(t, ok)
}
