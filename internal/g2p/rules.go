package g2p

// letterRules maps grapheme sequences to ARPABET phones for words missing
// from the lexicon. Longest match wins; single letters always match, so every
// alphabetic word yields a pronunciation.
var letterRules = map[string][]string{
	"tion": {"SH", "AH0", "N"},
	"sion": {"ZH", "AH0", "N"},
	"ough": {"AH1", "F"},
	"ight": {"AY1", "T"},
	"ture": {"CH", "ER0"},
	"ould": {"UH1", "D"},
	"ound": {"AW1", "N", "D"},
	"ment": {"M", "AH0", "N", "T"},
	"ness": {"N", "AH0", "S"},
	"able": {"AH0", "B", "AH0", "L"},
	"ible": {"AH0", "B", "AH0", "L"},

	"ful": {"F", "AH0", "L"},
	"ing": {"IH0", "NG"},
	"ght": {"T"},
	"tch": {"CH"},
	"dge": {"JH"},
	"que": {"K"},

	"ph": {"F"},
	"th": {"TH"},
	"sh": {"SH"},
	"ch": {"CH"},
	"wh": {"W"},
	"wr": {"R"},
	"kn": {"N"},
	"gn": {"N"},
	"ck": {"K"},
	"ng": {"NG"},
	"gh": {},
	"ee": {"IY1"},
	"ea": {"IY1"},
	"oo": {"UW1"},
	"ou": {"AW1"},
	"ow": {"OW1"},
	"ai": {"EY1"},
	"ay": {"EY1"},
	"oi": {"OY1"},
	"oy": {"OY1"},
	"au": {"AO1"},
	"aw": {"AO1"},
	"er": {"ER0"},
	"ir": {"ER1"},
	"ur": {"ER1"},
	"ar": {"AA1", "R"},
	"or": {"AO1", "R"},
	"le": {"AH0", "L"},

	"a": {"AE1"},
	"b": {"B"},
	"c": {"K"},
	"d": {"D"},
	"e": {"EH1"},
	"f": {"F"},
	"g": {"G"},
	"h": {"HH"},
	"i": {"IH1"},
	"j": {"JH"},
	"k": {"K"},
	"l": {"L"},
	"m": {"M"},
	"n": {"N"},
	"o": {"AA1"},
	"p": {"P"},
	"q": {"K"},
	"r": {"R"},
	"s": {"S"},
	"t": {"T"},
	"u": {"AH1"},
	"v": {"V"},
	"w": {"W"},
	"x": {"K", "S"},
	"y": {"Y"},
	"z": {"Z"},
}

// maxRuleLen is the longest grapheme sequence in letterRules.
const maxRuleLen = 4

// rulePhones converts a lowercase word to phones by greedy longest-match
// over letterRules. Characters with no rule (apostrophes, stray marks) are
// skipped.
func rulePhones(word string) []string {
	var phones []string
	for i := 0; i < len(word); {
		matched := false
		for length := maxRuleLen; length >= 1; length-- {
			if i+length > len(word) {
				continue
			}
			if ph, ok := letterRules[word[i:i+length]]; ok {
				phones = append(phones, ph...)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return phones
}
