package domain

// DefaultLocale is the fallback language for translatable attributes.
const DefaultLocale = "en"

// LocalizedText holds one text value per locale code. It round-trips as
// JSONB through pgx's JSON codec.
type LocalizedText map[string]string

// Resolve returns the variant for the given locale, falling back to the
// default locale when the requested one is absent or empty.
func (t LocalizedText) Resolve(locale string) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}

	return t[DefaultLocale]
}
