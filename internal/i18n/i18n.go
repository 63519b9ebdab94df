// Package i18n resolves the active locale of a request. English is the
// default; Russian is the only other supported locale.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// FromRequest picks the best supported locale for the request's
// Accept-Language header. Unparseable or missing headers resolve to the
// default locale.
func FromRequest(r *http.Request) string {
	return FromAcceptLanguage(r.Header.Get("Accept-Language"))
}

func FromAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return base(supported[0])
	}

	_, idx, _ := matcher.Match(tags...)

	return base(supported[idx])
}

func base(tag language.Tag) string {
	b, _ := tag.Base()
	return b.String()
}
