package entities

// Statistics summarizes learning progress over one user's dictionary.
type Statistics struct {
	Learned         int // entries at or above the mastery threshold
	Total           int // all entries in the dictionary
	ProgressPercent int // floor(Learned / Total * 100)
}
