package domain

// LocalizedText maps every supported language to display text.
type LocalizedText map[Language]string

// In returns the text for lang, falling back to English.
func (t LocalizedText) In(lang Language) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t[LangEN]
}

// Guideline is one immutable record of the guideline catalog.
type Guideline struct {
	ID                    string
	RefID                 string
	Level                 Level
	Roles                 []Role
	Title                 LocalizedText
	DescriptionSimplified LocalizedText
	DescriptionOriginal   LocalizedText
	ReferenceURL          string
}

// HasAnyRole reports whether the guideline carries at least one role in roles.
func (g *Guideline) HasAnyRole(roles map[Role]bool) bool {
	for _, r := range g.Roles {
		if roles[r] {
			return true
		}
	}
	return false
}
