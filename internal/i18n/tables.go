package i18n

import "github.com/kobofi/kobo-cli/internal/domain"

var tables = map[domain.Language]map[string]string{
	domain.LanguageEnglish: {
		"welcome.title":                "Welcome to Kobo",
		"welcome.subtitle":             "Save, invest and grow together",
		"nav.dashboard":                "Dashboard",
		"nav.wallet":                   "Wallet",
		"nav.invest":                   "Invest",
		"nav.circles":                  "Circles",
		"nav.learn":                    "Learn",
		"nav.settings":                 "Settings",
		"dashboard.balance":            "Wallet balance",
		"dashboard.savings":            "Total savings",
		"dashboard.portfolio":          "Portfolio value",
		"dashboard.notifications":      "Unread notifications",
		"wallet.topup":                 "Top up",
		"wallet.withdraw":              "Withdraw",
		"wallet.save":                  "Move to savings",
		"wallet.invest":                "Invest",
		"wallet.circle":                "Circle contribution",
		"onboarding.goal_prompt":       "What are you saving for?",
		"onboarding.done":              "You're all set",
		"risk.title":                   "Investor profile quiz",
		"risk.retake":                  "Retake the quiz",
		"risk.category.conservative":   "Conservative",
		"risk.category.moderate":       "Moderate",
		"risk.category.aggressive":     "Aggressive",
		"risk.product.money_market":    "Money market fund",
		"risk.product.treasury_bills":  "Treasury bills",
		"risk.product.fixed_deposit":   "Fixed deposit",
		"risk.product.balanced_fund":   "Balanced fund",
		"risk.product.corporate_bonds": "Corporate bonds",
		"risk.product.index_fund":      "Index fund",
		"risk.product.equity_fund":     "Equity fund",
		"risk.product.growth_stocks":   "Growth stocks",
		"risk.product.dollar_fund":     "Dollar fund",
	},
	domain.LanguageFrench: {
		"welcome.title":                "Bienvenue sur Kobo",
		"welcome.subtitle":             "Épargnez, investissez et grandissez ensemble",
		"nav.dashboard":                "Tableau de bord",
		"nav.wallet":                   "Portefeuille",
		"nav.invest":                   "Investir",
		"nav.circles":                  "Cercles",
		"nav.learn":                    "Apprendre",
		"nav.settings":                 "Paramètres",
		"dashboard.balance":            "Solde du portefeuille",
		"dashboard.savings":            "Épargne totale",
		"dashboard.portfolio":          "Valeur du portefeuille",
		"dashboard.notifications":      "Notifications non lues",
		"wallet.topup":                 "Recharger",
		"wallet.withdraw":              "Retirer",
		"wallet.save":                  "Vers l'épargne",
		"wallet.invest":                "Investir",
		"wallet.circle":                "Cotisation au cercle",
		"onboarding.goal_prompt":       "Pour quoi épargnez-vous ?",
		"onboarding.done":              "Tout est prêt",
		"risk.title":                   "Quiz de profil investisseur",
		"risk.retake":                  "Refaire le quiz",
		"risk.category.conservative":   "Prudent",
		"risk.category.moderate":       "Équilibré",
		"risk.category.aggressive":     "Dynamique",
		"risk.product.money_market":    "Fonds monétaire",
		"risk.product.treasury_bills":  "Bons du Trésor",
		"risk.product.fixed_deposit":   "Dépôt à terme",
		"risk.product.balanced_fund":   "Fonds équilibré",
		"risk.product.corporate_bonds": "Obligations d'entreprise",
		"risk.product.index_fund":      "Fonds indiciel",
		"risk.product.equity_fund":     "Fonds actions",
		"risk.product.growth_stocks":   "Actions de croissance",
		"risk.product.dollar_fund":     "Fonds en dollars",
	},
	domain.LanguageSwahili: {
		"welcome.title":              "Karibu Kobo",
		"welcome.subtitle":           "Weka akiba, wekeza na kua pamoja",
		"nav.dashboard":              "Dashibodi",
		"nav.wallet":                 "Pochi",
		"nav.invest":                 "Wekeza",
		"nav.circles":                "Vikundi",
		"nav.learn":                  "Jifunze",
		"nav.settings":               "Mipangilio",
		"dashboard.balance":          "Salio la pochi",
		"dashboard.savings":          "Jumla ya akiba",
		"dashboard.portfolio":        "Thamani ya uwekezaji",
		"dashboard.notifications":    "Arifa ambazo hazijasomwa",
		"wallet.topup":               "Ongeza pesa",
		"wallet.withdraw":            "Toa pesa",
		"wallet.save":                "Hamisha kwenye akiba",
		"wallet.invest":              "Wekeza",
		"wallet.circle":              "Mchango wa kikundi",
		"onboarding.goal_prompt":     "Unaweka akiba kwa ajili ya nini?",
		"onboarding.done":            "Uko tayari",
		"risk.title":                 "Jaribio la wasifu wa mwekezaji",
		"risk.retake":                "Rudia jaribio",
		"risk.category.conservative": "Mwangalifu",
		"risk.category.moderate":     "Wastani",
		"risk.category.aggressive":   "Jasiri",
	},
	domain.LanguagePidgin: {
		"welcome.title":              "Welcome to Kobo",
		"welcome.subtitle":           "Save, invest and grow togeda",
		"nav.dashboard":              "Dashboard",
		"nav.wallet":                 "Wallet",
		"nav.invest":                 "Invest",
		"nav.circles":                "Circles",
		"nav.learn":                  "Learn",
		"nav.settings":               "Settings",
		"dashboard.balance":          "Money wey dey your wallet",
		"dashboard.savings":          "All your savings",
		"dashboard.portfolio":        "Your investment worth",
		"dashboard.notifications":    "Notifications wey you never read",
		"wallet.topup":               "Add money",
		"wallet.withdraw":            "Comot money",
		"wallet.save":                "Put am for savings",
		"wallet.invest":              "Invest am",
		"wallet.circle":              "Circle contribution",
		"onboarding.goal_prompt":     "Wetin you dey save for?",
		"onboarding.done":            "You don set",
		"risk.title":                 "Investor profile quiz",
		"risk.retake":                "Do di quiz again",
		"risk.category.conservative": "Careful",
		"risk.category.moderate":     "Middle ground",
		"risk.category.aggressive":   "Risk taker",
	},
	domain.LanguageArabic: {
		"welcome.title":              "مرحباً بك في كوبو",
		"welcome.subtitle":           "ادخر واستثمر وانمُ معاً",
		"nav.dashboard":              "لوحة التحكم",
		"nav.wallet":                 "المحفظة",
		"nav.invest":                 "استثمر",
		"nav.circles":                "الدوائر",
		"nav.learn":                  "تعلّم",
		"nav.settings":               "الإعدادات",
		"dashboard.balance":          "رصيد المحفظة",
		"dashboard.savings":          "إجمالي المدخرات",
		"dashboard.portfolio":        "قيمة الاستثمارات",
		"dashboard.notifications":    "إشعارات غير مقروءة",
		"wallet.topup":               "إيداع",
		"wallet.withdraw":            "سحب",
		"wallet.save":                "تحويل إلى المدخرات",
		"wallet.invest":              "استثمار",
		"wallet.circle":              "مساهمة الدائرة",
		"onboarding.goal_prompt":     "ما هو هدف ادخارك؟",
		"onboarding.done":            "كل شيء جاهز",
		"risk.title":                 "اختبار ملف المستثمر",
		"risk.retake":                "أعد الاختبار",
		"risk.category.conservative": "متحفظ",
		"risk.category.moderate":     "متوازن",
		"risk.category.aggressive":   "جريء",
	},
}
