// SPDX-License-Identifier: MIT

package fallback

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys are the English source strings.
const (
	msgFailed       = "Failed to balance."
	msgInvalidInput = "Invalid formula format."
)

// Supported lists the languages with translated messages; the first is the default.
var Supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(Supported)

func init() {
	for key, ar := range map[string]string{
		msgFailed:       "فشل الموازنة.",
		msgInvalidInput: "صيغة غير صحيحة.",
	} {
		message.SetString(language.English, key, key)
		message.SetString(language.Arabic, key, ar)
	}
}

// MatchLanguage maps a BCP 47 string (e.g. "ar", "ar-EG", "en-US") to the
// closest supported tag; unparseable input yields English.
func MatchLanguage(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}

	return matchTag(tag)
}

func matchTag(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)

	return Supported[idx]
}

func localize(lang language.Tag, key message.Reference) string {
	return message.NewPrinter(matchTag(lang)).Sprintf(key)
}
