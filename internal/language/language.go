package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Undetermined is the ISO 639-2 code used when a stream carries no language tag.
const Undetermined = "und"

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	alt3    string // ISO 639-2 bibliographic alternate (e.g. "fre" vs "fra")
	display string
}

var languages = []entry{
	{"en", "eng", "", "English"},
	{"es", "spa", "", "Spanish"},
	{"fr", "fra", "fre", "French"},
	{"de", "deu", "ger", "German"},
	{"it", "ita", "", "Italian"},
	{"pt", "por", "", "Portuguese"},
	{"ja", "jpn", "", "Japanese"},
	{"ko", "kor", "", "Korean"},
	{"zh", "zho", "chi", "Chinese"},
	{"ru", "rus", "", "Russian"},
	{"ar", "ara", "", "Arabic"},
	{"hi", "hin", "", "Hindi"},
	{"nl", "nld", "dut", "Dutch"},
	{"pl", "pol", "", "Polish"},
	{"sv", "swe", "", "Swedish"},
	{"da", "dan", "", "Danish"},
	{"no", "nor", "", "Norwegian"},
	{"fi", "fin", "", "Finnish"},
}

var byCode map[string]*entry

func init() {
	byCode = make(map[string]*entry, len(languages)*3)
	for i := range languages {
		e := &languages[i]
		byCode[e.code2] = e
		byCode[e.code3] = e
		if e.alt3 != "" {
			byCode[e.alt3] = e
		}
	}
}

// ExtractFromTags returns the normalized "language" tag. Other spellings
// such as LANGUAGE or language_ietf are not consulted.
func ExtractFromTags(tags map[string]string) string {
	value := strings.TrimSpace(strings.ReplaceAll(tags["language"], "\u0000", ""))
	return strings.ToLower(value)
}

// FromTags is ExtractFromTags with the "und" default applied.
func FromTags(tags map[string]string) string {
	if lang := ExtractFromTags(tags); lang != "" {
		return lang
	}
	return Undetermined
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	switch code {
	case "":
		return "Unknown"
	case Undetermined:
		return "Undetermined"
	}
	if e, ok := byCode[code]; ok {
		return e.display
	}
	if base, err := xlanguage.ParseBase(code); err == nil {
		if name := display.English.Languages().Name(base); name != "" {
			return name
		}
	}
	return strings.ToUpper(code)
}

// Known reports whether code is a recognized ISO 639 language code.
func Known(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) < 2 || len(code) > 3 {
		return false
	}
	if code == Undetermined {
		return true
	}
	if _, ok := byCode[code]; ok {
		return true
	}
	_, err := xlanguage.ParseBase(code)
	return err == nil
}

// Unknown returns the codes in list that Known rejects, preserving order.
func Unknown(list []string) []string {
	var out []string
	for _, code := range list {
		if !Known(code) {
			out = append(out, code)
		}
	}
	return out
}
