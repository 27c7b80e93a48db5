// Package i18n provides the localized strings, SEO metadata and the
// language resolver used by the web front.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported two-letter language code.
type Language string

const (
	English  = Language("en")
	Korean   = Language("ko")
	Spanish  = Language("es")
	Chinese  = Language("zh")
	Japanese = Language("ja")

	Default = English
)

// Info describes a language in the switcher.
type Info struct {
	Code      Language
	Name      string
	Flag      string
	Countries []string
}

// Languages lists the supported languages in switcher order.
var Languages = []Info{
	{Code: English, Name: "English", Flag: "🇺🇸", Countries: []string{"US", "GB", "CA", "AU"}},
	{Code: Korean, Name: "한국어", Flag: "🇰🇷", Countries: []string{"KR"}},
	{Code: Spanish, Name: "Español", Flag: "🇪🇸", Countries: []string{"ES", "MX", "AR", "CO"}},
	{Code: Chinese, Name: "中文", Flag: "🇨🇳", Countries: []string{"CN", "TW", "HK", "SG"}},
	{Code: Japanese, Name: "日本語", Flag: "🇯🇵", Countries: []string{"JP"}},
}

var supportedTags = []language.Tag{
	language.English,
	language.Korean,
	language.Spanish,
	language.Chinese,
	language.Japanese,
}

var tagMatcher = language.NewMatcher(supportedTags)

var countryToLanguage = make(map[string]Language)

func init() {
	for _, info := range Languages {
		for _, c := range info.Countries {
			countryToLanguage[c] = info.Code
		}
	}
}

// Parse accepts a supported language code, case-insensitively.
func Parse(code string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, info := range Languages {
		if info.Code == lang {
			return lang, true
		}
	}
	return "", false
}

// InfoFor returns the switcher entry for lang, or the default's.
func InfoFor(lang Language) Info {
	for _, info := range Languages {
		if info.Code == lang {
			return info
		}
	}
	return Languages[0]
}

// ForCountry maps an ISO 3166 alpha-2 country code to a language.
func ForCountry(country string) (Language, bool) {
	lang, ok := countryToLanguage[strings.ToUpper(strings.TrimSpace(country))]
	return lang, ok
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header. ok is false when the header is empty, malformed
// or names no supported language.
func MatchAcceptLanguage(header string) (Language, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return Languages[idx].Code, true
}

// FromPath returns the language named by the first path segment.
func FromPath(path string) (Language, bool) {
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		return Parse(seg)
	}
	return "", false
}
