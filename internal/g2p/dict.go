package g2p

// lexicon maps lowercase English words to their ARPABET pronunciations with
// stress digits on vowels, CMU-dictionary style. It covers the most frequent
// words; everything else falls through to the letter rules.
var lexicon = map[string][]string{
	"the":   {"DH", "AH0"},
	"a":     {"AH0"},
	"an":    {"AE1", "N"},
	"and":   {"AH0", "N", "D"},
	"or":    {"AO1", "R"},
	"is":    {"IH1", "Z"},
	"are":   {"AA1", "R"},
	"was":   {"W", "AA1", "Z"},
	"were":  {"W", "ER1"},
	"be":    {"B", "IY1"},
	"been":  {"B", "IH1", "N"},
	"have":  {"HH", "AE1", "V"},
	"has":   {"HH", "AE1", "Z"},
	"had":   {"HH", "AE1", "D"},
	"do":    {"D", "UW1"},
	"does":  {"D", "AH1", "Z"},
	"did":   {"D", "IH1", "D"},
	"will":  {"W", "IH1", "L"},
	"would": {"W", "UH1", "D"},
	"could": {"K", "UH1", "D"},
	"can":   {"K", "AE1", "N"},
	"must":  {"M", "AH1", "S", "T"},

	"i":     {"AY1"},
	"you":   {"Y", "UW1"},
	"he":    {"HH", "IY1"},
	"she":   {"SH", "IY1"},
	"it":    {"IH1", "T"},
	"we":    {"W", "IY1"},
	"they":  {"DH", "EY1"},
	"me":    {"M", "IY1"},
	"my":    {"M", "AY1"},
	"your":  {"Y", "AO1", "R"},
	"his":   {"HH", "IH1", "Z"},
	"her":   {"HH", "ER1"},
	"our":   {"AW1", "ER0"},
	"their": {"DH", "EH1", "R"},
	"this":  {"DH", "IH1", "S"},
	"that":  {"DH", "AE1", "T"},
	"these": {"DH", "IY1", "Z"},
	"those": {"DH", "OW1", "Z"},

	"what":  {"W", "AH1", "T"},
	"which": {"W", "IH1", "CH"},
	"who":   {"HH", "UW1"},
	"where": {"W", "EH1", "R"},
	"when":  {"W", "EH1", "N"},
	"why":   {"W", "AY1"},
	"how":   {"HH", "AW1"},
	"not":   {"N", "AA1", "T"},
	"no":    {"N", "OW1"},
	"yes":   {"Y", "EH1", "S"},

	"to":      {"T", "UW1"},
	"of":      {"AH1", "V"},
	"in":      {"IH1", "N"},
	"on":      {"AA1", "N"},
	"at":      {"AE1", "T"},
	"by":      {"B", "AY1"},
	"for":     {"F", "AO1", "R"},
	"with":    {"W", "IH1", "DH"},
	"from":    {"F", "R", "AH1", "M"},
	"about":   {"AH0", "B", "AW1", "T"},
	"into":    {"IH1", "N", "T", "UW0"},
	"through": {"TH", "R", "UW1"},
	"after":   {"AE1", "F", "T", "ER0"},
	"before":  {"B", "IH0", "F", "AO1", "R"},
	"under":   {"AH1", "N", "D", "ER0"},
	"over":    {"OW1", "V", "ER0"},
	"up":      {"AH1", "P"},
	"down":    {"D", "AW1", "N"},
	"out":     {"AW1", "T"},
	"off":     {"AO1", "F"},
	"if":      {"IH1", "F"},
	"then":    {"DH", "EH1", "N"},
	"than":    {"DH", "AE1", "N"},
	"so":      {"S", "OW1"},
	"just":    {"JH", "AH1", "S", "T"},
	"also":    {"AO1", "L", "S", "OW0"},
	"very":    {"V", "EH1", "R", "IY0"},
	"well":    {"W", "EH1", "L"},
	"here":    {"HH", "IY1", "R"},
	"there":   {"DH", "EH1", "R"},
	"now":     {"N", "AW1"},
	"only":    {"OW1", "N", "L", "IY0"},
	"again":   {"AH0", "G", "EH1", "N"},

	"one":    {"W", "AH1", "N"},
	"two":    {"T", "UW1"},
	"three":  {"TH", "R", "IY1"},
	"four":   {"F", "AO1", "R"},
	"five":   {"F", "AY1", "V"},
	"six":    {"S", "IH1", "K", "S"},
	"seven":  {"S", "EH1", "V", "AH0", "N"},
	"eight":  {"EY1", "T"},
	"nine":   {"N", "AY1", "N"},
	"ten":    {"T", "EH1", "N"},
	"zero":   {"Z", "IY1", "R", "OW0"},
	"eleven": {"IH0", "L", "EH1", "V", "AH0", "N"},
	"twelve": {"T", "W", "EH1", "L", "V"},
	"twenty": {"T", "W", "EH1", "N", "T", "IY0"},
	"thirty": {"TH", "ER1", "T", "IY0"},
	"forty":  {"F", "AO1", "R", "T", "IY0"},
	"fifty":  {"F", "IH1", "F", "T", "IY0"},
	"sixty":  {"S", "IH1", "K", "S", "T", "IY0"},
	"hundred": {"HH", "AH1", "N", "D", "R", "AH0", "D"},
	"thousand": {"TH", "AW1", "Z", "AH0", "N", "D"},
	"million":  {"M", "IH1", "L", "Y", "AH0", "N"},
	"billion":  {"B", "IH1", "L", "Y", "AH0", "N"},
	"point":    {"P", "OY1", "N", "T"},
	"dollar":   {"D", "AA1", "L", "ER0"},
	"dollars":  {"D", "AA1", "L", "ER0", "Z"},
	"cent":     {"S", "EH1", "N", "T"},
	"cents":    {"S", "EH1", "N", "T", "S"},

	"good":      {"G", "UH1", "D"},
	"new":       {"N", "UW1"},
	"first":     {"F", "ER1", "S", "T"},
	"last":      {"L", "AE1", "S", "T"},
	"long":      {"L", "AO1", "NG"},
	"great":     {"G", "R", "EY1", "T"},
	"little":    {"L", "IH1", "T", "AH0", "L"},
	"other":     {"AH1", "DH", "ER0"},
	"old":       {"OW1", "L", "D"},
	"right":     {"R", "AY1", "T"},
	"big":       {"B", "IH1", "G"},
	"high":      {"HH", "AY1"},
	"small":     {"S", "M", "AO1", "L"},
	"same":      {"S", "EY1", "M"},
	"wonderful": {"W", "AH1", "N", "D", "ER0", "F", "AH0", "L"},
	"extraordinary": {"IH0", "K", "S", "T", "R", "AO1", "R", "D", "AH0", "N", "EH2", "R", "IY0"},

	"say":    {"S", "EY1"},
	"said":   {"S", "EH1", "D"},
	"get":    {"G", "EH1", "T"},
	"make":   {"M", "EY1", "K"},
	"go":     {"G", "OW1"},
	"see":    {"S", "IY1"},
	"know":   {"N", "OW1"},
	"take":   {"T", "EY1", "K"},
	"come":   {"K", "AH1", "M"},
	"think":  {"TH", "IH1", "NG", "K"},
	"look":   {"L", "UH1", "K"},
	"want":   {"W", "AA1", "N", "T"},
	"give":   {"G", "IH1", "V"},
	"use":    {"Y", "UW1", "Z"},
	"find":   {"F", "AY1", "N", "D"},
	"tell":   {"T", "EH1", "L"},
	"work":   {"W", "ER1", "K"},
	"call":   {"K", "AO1", "L"},
	"need":   {"N", "IY1", "D"},
	"keep":   {"K", "IY1", "P"},
	"show":   {"SH", "OW1"},
	"hear":   {"HH", "IY1", "R"},
	"play":   {"P", "L", "EY1"},
	"run":    {"R", "AH1", "N"},
	"move":   {"M", "UW1", "V"},
	"live":   {"L", "IH1", "V"},
	"hold":   {"HH", "OW1", "L", "D"},
	"write":  {"R", "AY1", "T"},
	"read":   {"R", "IY1", "D"},
	"speak":  {"S", "P", "IY1", "K"},
	"stop":   {"S", "T", "AA1", "P"},
	"open":   {"OW1", "P", "AH0", "N"},
	"walk":   {"W", "AO1", "K"},
	"win":    {"W", "IH1", "N"},
	"love":   {"L", "AH1", "V"},
	"buy":    {"B", "AY1"},
	"wait":   {"W", "EY1", "T"},
	"send":   {"S", "EH1", "N", "D"},
	"build":  {"B", "IH1", "L", "D"},
	"stay":   {"S", "T", "EY1"},
	"fall":   {"F", "AO1", "L"},
	"cut":    {"K", "AH1", "T"},
	"reach":  {"R", "IY1", "CH"},
	"remain": {"R", "IH0", "M", "EY1", "N"},

	"hello":  {"HH", "AH0", "L", "OW1"},
	"world":  {"W", "ER1", "L", "D"},
	"okay":   {"OW2", "K", "EY1"},
	"sure":   {"SH", "UH1", "R"},
	"thanks": {"TH", "AE1", "NG", "K", "S"},
	"sorry":  {"S", "AA1", "R", "IY0"},
	"please": {"P", "L", "IY1", "Z"},

	"mister": {"M", "IH1", "S", "T", "ER0"},
	"missus": {"M", "IH1", "S", "AH0", "Z"},
	"doctor": {"D", "AA1", "K", "T", "ER0"},
	"saint":  {"S", "EY1", "N", "T"},
	"versus": {"V", "ER1", "S", "AH0", "Z"},
}

// abbreviations expands common written abbreviations before lookup.
var abbreviations = [][2]string{
	{"Mr.", "Mister"},
	{"Mrs.", "Missus"},
	{"Dr.", "Doctor"},
	{"St.", "Saint"},
	{"vs.", "versus"},
	{"etc.", "etcetera"},
}
