package release

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/hbollon/go-edlib"
)

// numberRegex extracts sequence numbers from titles ("2", "2049").
var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// MatchConfidence represents the confidence level of a title match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the best candidate found by MatchTitle.
type MatchResult struct {
	Title      string
	Score      float64 // Jaro-Winkler similarity, 0.0-1.0
	Confidence MatchConfidence
}

// MatchTitle compares a parsed title against candidate titles with
// Jaro-Winkler similarity, adjusted when sequence numbers agree or differ.
func MatchTitle(parsed string, candidates []string) MatchResult {
	best := MatchResult{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	normalizedParsed := CleanTitle(parsed)
	parsedNumbers := extractNumbers(normalizedParsed)

	for _, candidate := range candidates {
		normalizedCandidate := CleanTitle(candidate)
		score := float64(edlib.JaroWinklerSimilarity(normalizedParsed, normalizedCandidate))
		score = adjustScoreForNumbers(score, parsedNumbers, extractNumbers(normalizedCandidate))

		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Title = ""
	}

	return best
}

func extractNumbers(title string) []string {
	return numberRegex.FindAllString(title, -1)
}

// adjustScoreForNumbers rewards a shared sequence number and penalizes a
// missing or different one. Titles without numbers are left unchanged.
func adjustScoreForNumbers(score float64, parsedNums, candidateNums []string) float64 {
	if len(parsedNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	for _, n := range parsedNums {
		if slices.Contains(candidateNums, n) {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}

// Alias is an alternative title of a movie or show, e.g. a localized name.
type Alias struct {
	Title   string `json:"title"`
	Country string `json:"country,omitempty"`
}

// AliasTitles returns the distinct non-empty alias titles in order.
func AliasTitles(aliases []Alias) []string {
	seen := make(map[string]bool, len(aliases))
	titles := make([]string, 0, len(aliases))
	for _, a := range aliases {
		t := strings.TrimSpace(a.Title)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		titles = append(titles, t)
	}
	return titles
}

// CheckTitle reports whether a file name belongs to the requested title.
// The parsed title must match the title or one of the aliases with at least
// medium confidence. An episode marker in the name must equal the requested
// season and episode, and a movie year may differ by one.
func CheckTitle(title, candidate string, aliases []string, year, season, episode string) bool {
	info := Parse(candidate)
	if info.CleanTitle == "" {
		return false
	}

	titles := append([]string{title}, aliases...)
	if MatchTitle(info.Title, titles).Confidence < ConfidenceMedium {
		return false
	}

	wantSeason, hasSeason := atoi(season)
	wantEpisode, hasEpisode := atoi(episode)
	if hasSeason || hasEpisode {
		if !info.HasEpisode() {
			return true
		}
		if hasSeason && info.Season != wantSeason {
			return false
		}
		return !hasEpisode || info.Episode == wantEpisode
	}

	if wantYear, ok := atoi(year); ok && info.Year != 0 {
		diff := info.Year - wantYear
		return diff >= -1 && diff <= 1
	}
	return true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
