package domain

// Direction selects which side of a dictionary pair the query is on.
type Direction string

const (
	// DirectionForward resolves romanized Banglish into English.
	DirectionForward Direction = "banglish_to_english"
	// DirectionReverse resolves English back into romanized Banglish.
	DirectionReverse Direction = "english_to_banglish"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionForward, DirectionReverse:
		return true
	}
	return false
}

// Method identifies which pipeline stage produced a result. Callers use it
// for logging and analytics; the pipeline itself never branches on it.
type Method string

const (
	MethodAdaptiveCache Method = "adaptive_cache"
	MethodExact         Method = "exact"
	MethodPhonetic      Method = "phonetic"
	MethodFuzzy         Method = "fuzzy"
	MethodCompound      Method = "compound"
	MethodPattern       Method = "pattern"
	MethodWordByWord    Method = "word_by_word"
)

func (m Method) String() string { return string(m) }

func (m Method) IsValid() bool {
	switch m {
	case MethodAdaptiveCache, MethodExact, MethodPhonetic, MethodFuzzy,
		MethodCompound, MethodPattern, MethodWordByWord:
		return true
	}
	return false
}
