package catalog

import "github.com/kobofi/kobo-cli/internal/domain"

// QuizQuestion is one step of the six-question investor profile quiz. The
// three options are ordered by score: option 1 is the conservative answer,
// option 3 the aggressive one.
type QuizQuestion struct {
	Prompt  string
	Options [3]string
}

// QuizQuestions returns the question set for lang, falling back to English
// for languages whose quiz copy has not been localized yet.
func QuizQuestions(lang domain.Language) []QuizQuestion {
	if qs, ok := quizCopy[lang]; ok {
		return qs
	}
	return quizCopy[domain.LanguageEnglish]
}

var quizCopy = map[domain.Language][]QuizQuestion{
	domain.LanguageEnglish: {
		{
			Prompt: "How long do you plan to keep your money invested?",
			Options: [3]string{
				"Less than a year",
				"One to five years",
				"More than five years",
			},
		},
		{
			Prompt: "Your investment drops 20% in a month. What do you do?",
			Options: [3]string{
				"Sell everything before it gets worse",
				"Wait and see",
				"Buy more while it's cheap",
			},
		},
		{
			Prompt: "What matters most to you?",
			Options: [3]string{
				"Keeping what I have safe",
				"Steady growth with some safety",
				"Growing my money as fast as possible",
			},
		},
		{
			Prompt: "How much of your income can you set aside monthly?",
			Options: [3]string{
				"Less than 5%",
				"5% to 20%",
				"More than 20%",
			},
		},
		{
			Prompt: "Have you invested in stocks or funds before?",
			Options: [3]string{
				"Never",
				"A little",
				"Yes, regularly",
			},
		},
		{
			Prompt: "If a friend pitched a risky business with big potential returns, you would:",
			Options: [3]string{
				"Decline politely",
				"Put in a small amount",
				"Invest a meaningful share of my savings",
			},
		},
	},
	domain.LanguageFrench: {
		{
			Prompt: "Combien de temps comptez-vous laisser votre argent investi ?",
			Options: [3]string{
				"Moins d'un an",
				"Un à cinq ans",
				"Plus de cinq ans",
			},
		},
		{
			Prompt: "Votre placement perd 20 % en un mois. Que faites-vous ?",
			Options: [3]string{
				"Je vends tout avant que cela n'empire",
				"J'attends de voir",
				"J'en achète plus tant que c'est bas",
			},
		},
		{
			Prompt: "Qu'est-ce qui compte le plus pour vous ?",
			Options: [3]string{
				"Protéger ce que j'ai",
				"Une croissance régulière avec un peu de sécurité",
				"Faire fructifier mon argent le plus vite possible",
			},
		},
		{
			Prompt: "Quelle part de vos revenus pouvez-vous mettre de côté chaque mois ?",
			Options: [3]string{
				"Moins de 5 %",
				"5 % à 20 %",
				"Plus de 20 %",
			},
		},
		{
			Prompt: "Avez-vous déjà investi en actions ou en fonds ?",
			Options: [3]string{
				"Jamais",
				"Un peu",
				"Oui, régulièrement",
			},
		},
		{
			Prompt: "Un ami vous propose une affaire risquée à fort potentiel. Vous :",
			Options: [3]string{
				"Déclinez poliment",
				"Misez une petite somme",
				"Investissez une part importante de votre épargne",
			},
		},
	},
}
