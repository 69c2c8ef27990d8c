package domain

import "fmt"

// Level is the WCAG conformance level of a guideline.
type Level string

const (
	LevelA   Level = "A"
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Levels lists every level in ascending severity order.
var Levels = []Level{LevelA, LevelAA, LevelAAA}

// Rank returns the severity rank of the level (A=1, AA=2, AAA=3).
// Unknown levels rank 0.
func (l Level) Rank() int {
	switch l {
	case LevelA:
		return 1
	case LevelAA:
		return 2
	case LevelAAA:
		return 3
	default:
		return 0
	}
}

func (l Level) Valid() bool { return l.Rank() > 0 }

// ParseLevel converts a user-supplied string into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("level %q (want A, AA or AAA): %w", s, ErrInvalidArgument)
	}
	return l, nil
}

// Role is the responsibility tag of a guideline.
type Role string

const (
	RoleDesign  Role = "Design"
	RoleDevelop Role = "Develop"
	RoleContent Role = "Content"
)

// Roles lists every role in display order.
var Roles = []Role{RoleDesign, RoleDevelop, RoleContent}

func (r Role) order() int {
	switch r {
	case RoleDesign:
		return 1
	case RoleDevelop:
		return 2
	case RoleContent:
		return 3
	default:
		return 0
	}
}

func (r Role) Valid() bool { return r.order() > 0 }

// ParseRole converts a user-supplied string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("role %q (want Design, Develop or Content): %w", s, ErrInvalidArgument)
	}
	return r, nil
}

// Language is a supported display language code.
type Language string

const (
	LangEN Language = "en"
	LangNL Language = "nl"
)

// Languages lists every supported language. Catalog text must cover all of them.
var Languages = []Language{LangEN, LangNL}

func (l Language) Valid() bool {
	switch l {
	case LangEN, LangNL:
		return true
	default:
		return false
	}
}

// ParseLanguage converts a user-supplied string into a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("language %q (want en or nl): %w", s, ErrInvalidArgument)
	}
	return l, nil
}

// Other returns the next supported language, used by the language switch.
func (l Language) Other() Language {
	if l == LangNL {
		return LangEN
	}
	return LangNL
}
