package api

const (
	languageCookieName   = "babybloom_lang"
	flashCookieName      = "babybloom_flash"
	calculatorCookieName = "babybloom_lmp"
	contextLanguageKey   = "current_language"
	contextMessagesKey   = "current_messages"
)
