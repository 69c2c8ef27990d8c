package catalog

import "github.com/alexanderramin/wcagcheck/internal/domain"

// Resource is an external tool or reference shown next to the checklist.
type Resource struct {
	Title       string
	Description domain.LocalizedText
	URL         string
}

var resources = []Resource{
	{
		Title: "WAVE Evaluation Tool",
		Description: domain.LocalizedText{
			domain.LangEN: "Browser extension for evaluating web accessibility.",
			domain.LangNL: "Browser extensie voor het evalueren van webtoegankelijkheid.",
		},
		URL: "https://wave.webaim.org/",
	},
	{
		Title: "Contrast Checker",
		Description: domain.LocalizedText{
			domain.LangEN: "Check color contrast ratios.",
			domain.LangNL: "Controleer kleurcontrast verhoudingen.",
		},
		URL: "https://webaim.org/resources/contrastchecker/",
	},
	{
		Title: "WCAG 2.1 Guidelines",
		Description: domain.LocalizedText{
			domain.LangEN: "Official W3C documentation.",
			domain.LangNL: "Officiële W3C documentatie.",
		},
		URL: "https://www.w3.org/TR/WCAG21/",
	},
}

// Resources returns a copy of the tools and references list.
func Resources() []Resource {
	out := make([]Resource, len(resources))
	for i, r := range resources {
		r.Description = cloneText(r.Description)
		out[i] = r
	}
	return out
}
