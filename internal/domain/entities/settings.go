package entities

// KindFilter restricts training questions to one entry kind, or allows all.
type KindFilter string

const (
	FilterWord       KindFilter = "word"
	FilterPhrase     KindFilter = "phrase"
	FilterExpression KindFilter = "expression"
	FilterAll        KindFilter = "all"
)

// DefaultQuizLength is the number of questions in one training run
// unless the user configured another value.
const DefaultQuizLength = 4

// UserSettings holds per-user training configuration.
type UserSettings struct {
	QuizLength int        // questions per training run, always positive
	Filter     KindFilter // which entry kinds to train
}

// NewUserSettings returns settings with default values.
func NewUserSettings() *UserSettings {
	return &UserSettings{
		QuizLength: DefaultQuizLength,
		Filter:     FilterAll,
	}
}

// Allows reports whether the filter admits entries of the given kind.
func (f KindFilter) Allows(kind WordKind) bool {
	if f == FilterAll {
		return true
	}
	return string(f) == string(kind)
}

// ParseKindFilter parses a stored filter value.
func ParseKindFilter(s string) (KindFilter, bool) {
	switch KindFilter(s) {
	case FilterWord, FilterPhrase, FilterExpression, FilterAll:
		return KindFilter(s), true
	default:
		return "", false
	}
}
