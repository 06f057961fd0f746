package language

import xlang "golang.org/x/text/language"

// DefaultLocale is used for codes without a locale mapping.
const DefaultLocale = "en-US"

var defaultTag = xlang.MustParse(DefaultLocale)

// locales maps language codes to the BCP 47 locale used for speech input
// and output.
var locales = map[string]xlang.Tag{
	"en": xlang.MustParse("en-US"),
	"es": xlang.MustParse("es-ES"),
	"fr": xlang.MustParse("fr-FR"),
	"ru": xlang.MustParse("ru-RU"),
	"zh": xlang.MustParse("zh-CN"),
	"hi": xlang.MustParse("hi-IN"),
	"ar": xlang.MustParse("ar-SA"),
	"ja": xlang.MustParse("ja-JP"),
	"de": xlang.MustParse("de-DE"),
	"ur": xlang.MustParse("ur-PK"),
	"it": xlang.MustParse("it-IT"),
	"ko": xlang.MustParse("ko-KR"),
}

// LocaleTag returns the speech locale for code, falling back to en-US.
func LocaleTag(code string) xlang.Tag {
	if tag, ok := locales[code]; ok {
		return tag
	}
	return defaultTag
}

// Locale returns the speech locale string for code, e.g. "zh-CN".
func Locale(code string) string {
	return LocaleTag(code).String()
}
