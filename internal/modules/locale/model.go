// README: Supported languages and the per-request localizer.
package locale

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preference is stored or the stored code is unknown.
const DefaultLanguage = "en"

// RecordName is the storage record holding the two-letter code.
const RecordName = "language"

// Supported lists the accepted two-letter codes.
var Supported = []string{"en", "es", "fr", "de", "zh", "ja", "ko", "ru", "pt", "it", "ar", "hi", "id", "nl", "pl"}

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Normalize maps a language tag ("pt-BR", "ZH") to a supported two-letter code.
func Normalize(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	base, _ := tag.Base()
	for _, s := range Supported {
		if s == base.String() {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// Localizer resolves message keys for one language. It is built once per request
// and passed to whatever needs localized text.
type Localizer struct {
	lang string
}

// New returns a Localizer for code, falling back to DefaultLanguage.
func New(code string) Localizer {
	if lang, err := Normalize(code); err == nil {
		return Localizer{lang: lang}
	}
	return Localizer{lang: DefaultLanguage}
}

func (l Localizer) Language() string {
	if l.lang == "" {
		return DefaultLanguage
	}
	return l.lang
}

// T returns the message for key in the selected language, then English, then the key
// itself. Each {name} placeholder is replaced from replacements.
func (l Localizer) T(key string, replacements map[string]any) string {
	msg, ok := messages[l.Language()][key]
	if !ok {
		msg, ok = messages[DefaultLanguage][key]
	}
	if !ok {
		msg = key
	}
	for name, v := range replacements {
		msg = strings.ReplaceAll(msg, "{"+name+"}", fmt.Sprint(v))
	}
	return msg
}

// TimeAgo renders how long before now the instant then was.
func (l Localizer) TimeAgo(then, now time.Time) string {
	seconds := math.Floor(now.Sub(then).Seconds())
	buckets := []struct {
		key  string
		size float64
	}{
		{"yearsAgo", 31536000},
		{"monthsAgo", 2592000},
		{"daysAgo", 86400},
		{"hoursAgo", 3600},
		{"minutesAgo", 60},
	}
	for _, b := range buckets {
		if interval := seconds / b.size; interval > 1 {
			return l.T(b.key, map[string]any{"count": int(math.Floor(interval))})
		}
	}
	return l.T("justNow", nil)
}
