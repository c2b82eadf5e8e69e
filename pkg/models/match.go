package models

// SubScores are the four weighted dimensions of a partner match, each 0-100.
type SubScores struct {
	Role       int `json:"role"`
	Experience int `json:"experience"`
	Industry   int `json:"industry"`
	Style      int `json:"style"`
}

// MatchResult is the derived output of the partner matcher. It is never
// persisted; ranking is recomputed from live records on each run.
type MatchResult struct {
	Partner   PartnerProfile `json:"partner"`
	SubScores SubScores      `json:"sub_scores"`
	Aggregate int            `json:"aggregate"` // 0-100, weighted combination
	Rank      int            `json:"rank"`      // 1-based position after sorting
	Reasoning []string       `json:"reasoning,omitempty"`
	Risk      string         `json:"risk,omitempty"`
}

// MaxMatchResults caps how many ranked results the matcher returns.
const MaxMatchResults = 10
