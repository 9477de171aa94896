package api

import (
	"fmt"
	"strings"
	"time"
)

type longDateLocale struct {
	months   [12]string
	weekdays [7]string
	format   func(weekday string, day int, month string, year int) string
}

var longDateLocales = map[string]longDateLocale{
	"en": {
		months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		format: func(weekday string, day int, month string, year int) string {
			return fmt.Sprintf("%s, %s %d, %d", weekday, month, day, year)
		},
	},
	"ru": {
		months:   [12]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
		weekdays: [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		format: func(weekday string, day int, month string, year int) string {
			return fmt.Sprintf("%s, %d %s %d", weekday, day, month, year)
		},
	},
}

// localizedLongDate renders "Wednesday, October 8, 2025" in English and
// "среда, 8 октября 2025" in Russian. Unknown languages use English.
func localizedLongDate(language string, value time.Time) string {
	locale, ok := longDateLocales[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		locale = longDateLocales["en"]
	}
	return locale.format(locale.weekdays[value.Weekday()], value.Day(), locale.months[value.Month()-1], value.Year())
}
