package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/domain"
)

// FormatResources renders the tools and references list in lang.
func FormatResources(res []catalog.Resource, lang domain.Language) string {
	var b strings.Builder
	b.WriteString(Header(domain.Translate(lang, domain.MsgResources)) + "\n\n")
	for _, r := range res {
		fmt.Fprintf(&b, "%s\n", Bold(r.Title))
		fmt.Fprintf(&b, "  %s\n", r.Description.In(lang))
		fmt.Fprintf(&b, "  %s\n\n", StyleBlue.Render(r.URL))
	}
	return b.String()
}
