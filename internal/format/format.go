// Package format renders movement dates, money and the logout countdown for
// a given locale. Currency patterns come from CLDR via bojanz/currency and
// calendar dates from the CLDR tables generated into go-playground/locales.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bojanz/currency"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de_CH"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/es_MX"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/it_IT"
	"github.com/go-playground/locales/ja_JP"
	"github.com/go-playground/locales/nl_NL"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/pt_PT"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const day = 24 * time.Hour

// Calendar translators. The first is the fallback for locales that match
// none of them.
var (
	translators = []locales.Translator{
		en_US.New(),
		en_GB.New(),
		pt_PT.New(),
		pt_BR.New(),
		de_DE.New(),
		de_CH.New(),
		fr_FR.New(),
		es_ES.New(),
		es_MX.New(),
		it_IT.New(),
		nl_NL.New(),
		ja_JP.New(),
	}
	translatorMatcher = language.NewMatcher(translatorTags())
)

func translatorTags() []language.Tag {
	tags := make([]language.Tag, len(translators))
	for i, tr := range translators {
		tags[i] = language.Make(strings.ReplaceAll(tr.Locale(), "_", "-"))
	}
	return tags
}

// Tag parses a BCP 47 locale, falling back to American English.
func Tag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func translatorFor(locale string) locales.Translator {
	_, idx, _ := translatorMatcher.Match(Tag(locale))
	return translators[idx]
}

// DaysBetween returns the whole number of days between two instants,
// rounded to the nearest day and never negative.
func DaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(math.Round(float64(d) / float64(day)))
}

// MovementDate renders date relative to now: "Today", "Yesterday",
// "N days ago" up to a week, and the locale's calendar date beyond that.
// Callers fix now once per render so every row uses the same reference.
func MovementDate(date, now time.Time, locale string) string {
	switch days := DaysBetween(now, date); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return CalendarDate(date, locale)
	}
}

// CalendarDate renders date in the locale's short numeric form.
func CalendarDate(date time.Time, locale string) string {
	return translatorFor(locale).FmtDateShort(date)
}

// LoginDate renders the date and time shown when a session starts.
func LoginDate(now time.Time, locale string) string {
	tr := translatorFor(locale)
	return tr.FmtDateShort(now) + ", " + tr.FmtTimeShort(now)
}

// Currency renders value as money in the given locale and ISO 4217 code,
// rounded to the currency's minor units. Codes without CLDR data fall back
// to two decimals followed by the code itself.
func Currency(value decimal.Decimal, locale, code string) string {
	tag := Tag(locale)

	amount, err := currency.NewAmount(value.String(), code)
	if err != nil {
		p := message.NewPrinter(tag)
		return p.Sprint(number.Decimal(value.InexactFloat64(), number.Scale(2))) + " " + code
	}
	return currency.NewFormatter(currency.NewLocale(tag.String())).Format(amount.Round())
}

// Countdown renders whole seconds as MM:SS; negative values render as 00:00.
func Countdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
