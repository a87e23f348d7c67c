package release

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches II-IX after a space. A bare "I" or "X" and a
// numeral at the start of the title are left alone ("I Robot", "American
// History X", "VII Days").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// sitePrefixRegex matches tracker tags that uploaders put in front of a file
// name, e.g. "[ www.site.org ] - " or "www.site.com - ".
var sitePrefixRegex = regexp.MustCompile(`(?i)^\s*(\[[^\]]*\]|www\.[a-z0-9.-]+\.[a-z]{2,6})\s*[-_.]*\s*`)

var leadingArticles = []string{"the ", "a ", "an "}

// NormalizeRomanNumerals rewrites Roman numerals II-IX as Arabic numbers.
func NormalizeRomanNumerals(s string) string {
	return romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		roman := strings.TrimSpace(match)
		if arabic, ok := romanToArabic[strings.ToUpper(roman)]; ok {
			return " " + arabic
		}
		return match
	})
}

// CleanTitle reduces a title to lower-case words for comparison: articles,
// punctuation and accents are dropped and Roman numerals become digits.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = NormalizeRomanNumerals(s)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// "Léon: The Professional" loses both articles.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(part)
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Normalize folds accented characters to their base form and collapses
// whitespace. Case and punctuation are kept.
func Normalize(s string) string {
	return strings.Join(strings.Fields(removeAccents(s)), " ")
}

// CleanFileName turns a path into the display name of the file: the
// directory, video extension and any leading site tag are removed and
// underscores become spaces.
func CleanFileName(name string) string {
	s := TrimVideoExt(baseName(strings.TrimSpace(name)))
	s = sitePrefixRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " -_")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range leadingArticles {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
