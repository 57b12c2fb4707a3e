package i18n

import (
	"golang.org/x/text/language"
)

var (
	english     = language.English
	kinyarwanda = language.MustParse("rw")

	supported = []language.Tag{english, kinyarwanda} // first is the fallback
	matcher   = language.NewMatcher(supported)
)

// Translator maps stored enum values and label keys to display strings
// for one negotiated language.
type Translator struct {
	tag    language.Tag
	labels map[string]string
}

// NewTranslator negotiates the best supported language for the given
// preference (an Accept-Language style string, e.g. "rw" or "fr-FR,en").
// Unknown preferences fall back to English.
func NewTranslator(pref string) *Translator {
	tag, _ := language.MatchStrings(matcher, pref)

	labels := labelsEN
	// Match can decorate the returned tag with region info; compare bases.
	if base, _ := tag.Base(); base.String() == "rw" {
		labels = labelsRW
	}
	return &Translator{tag: tag, labels: labels}
}

// Tag returns the negotiated language tag.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Label resolves a key to its display string, falling back to English and
// finally to the key itself so an untranslated value is never blank.
func (t *Translator) Label(key string) string {
	if s, ok := t.labels[key]; ok {
		return s
	}
	if s, ok := labelsEN[key]; ok {
		return s
	}
	return key
}
