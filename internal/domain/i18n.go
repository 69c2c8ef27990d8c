package domain

// Message is a translatable UI or report string.
type Message string

const (
	MsgTitle     Message = "title"
	MsgProgress  Message = "progress"
	MsgPass      Message = "pass"
	MsgPending   Message = "pending"
	MsgRule      Message = "rule"
	MsgLevel     Message = "level"
	MsgStatus    Message = "status"
	MsgWebsite   Message = "website"
	MsgRoles     Message = "roles"
	MsgNoRules   Message = "no_rules"
	MsgReference Message = "reference"
	MsgOriginal  Message = "original"
	MsgExport    Message = "export"
	MsgResources Message = "resources"
)

var messages = map[Language]map[Message]string{
	LangEN: {
		MsgTitle:     "WCAG Checklist",
		MsgProgress:  "Progress",
		MsgPass:      "Pass",
		MsgPending:   "Pending",
		MsgRule:      "Rule",
		MsgLevel:     "Level",
		MsgStatus:    "Status",
		MsgWebsite:   "Website",
		MsgRoles:     "Roles",
		MsgNoRules:   "No rules match the current filters.",
		MsgReference: "Reference",
		MsgOriginal:  "Official text",
		MsgExport:    "Export",
		MsgResources: "Tools & Resources",
	},
	LangNL: {
		MsgTitle:     "WCAG Checklist",
		MsgProgress:  "Voortgang",
		MsgPass:      "Voldaan",
		MsgPending:   "Te doen",
		MsgRule:      "Regel",
		MsgLevel:     "Niveau",
		MsgStatus:    "Status",
		MsgWebsite:   "Website",
		MsgRoles:     "Rollen",
		MsgNoRules:   "Geen regels voor de huidige filters.",
		MsgReference: "Referentie",
		MsgOriginal:  "Officiële tekst",
		MsgExport:    "Exporteer",
		MsgResources: "Tools & Bronnen",
	},
}

// Translate returns msg in lang, falling back to English and then to the
// message key itself.
func Translate(lang Language, msg Message) string {
	if s, ok := messages[lang][msg]; ok {
		return s
	}
	if s, ok := messages[LangEN][msg]; ok {
		return s
	}
	return string(msg)
}

// StatusLabel returns the pass or pending token for lang.
func StatusLabel(lang Language, completed bool) string {
	if completed {
		return Translate(lang, MsgPass)
	}
	return Translate(lang, MsgPending)
}
