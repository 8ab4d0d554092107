package norm

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Chinese normalizes mixed Chinese text: full-width forms fold to their
// ASCII equivalents, and digit runs become hanzi numerals so they
// syllabify as single characters.
type Chinese struct{}

// NewChinese creates a Chinese text normalizer.
func NewChinese() *Chinese { return &Chinese{} }

// Normalize folds width variants and rewrites digit runs as hanzi numerals.
func (n *Chinese) Normalize(text string) (string, error) {
	text = width.Fold.String(text)

	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !unicode.IsDigit(runes[i]) {
			out.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		intPart := string(runes[i:j])

		// A decimal point followed by more digits reads as 点.
		var fracPart string
		if j+1 < len(runes) && runes[j] == '.' && unicode.IsDigit(runes[j+1]) {
			k := j + 1
			for k < len(runes) && unicode.IsDigit(runes[k]) {
				k++
			}
			fracPart = string(runes[j+1 : k])
			j = k
		}

		out.WriteString(hanziInteger(intPart))
		if fracPart != "" {
			out.WriteString("点")
			for _, d := range fracPart {
				out.WriteString(hanziDigits[d-'0'])
			}
		}
		i = j
	}
	return out.String(), nil
}

var hanziDigits = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

var hanziUnits = []string{"", "十", "百", "千"}

var hanziGroups = []string{"", "万", "亿", "万亿"}

// hanziInteger reads a decimal digit string as a hanzi numeral. Numbers too
// long for the group units fall back to digit-by-digit reading, which is how
// phone numbers and IDs are spoken anyway.
func hanziInteger(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return hanziDigits[0]
	}
	if len(digits) > 16 {
		var b strings.Builder
		for _, d := range digits {
			b.WriteString(hanziDigits[d-'0'])
		}
		return b.String()
	}

	// Split into 4-digit groups from the right.
	var groups []string
	for len(digits) > 4 {
		groups = append([]string{digits[len(digits)-4:]}, groups...)
		digits = digits[:len(digits)-4]
	}
	groups = append([]string{digits}, groups...)

	var b strings.Builder
	pendingZero := false
	for gi, g := range groups {
		part, leadingZero := hanziGroup(g)
		if part == "" {
			pendingZero = b.Len() > 0
			continue
		}
		if pendingZero || (leadingZero && b.Len() > 0) {
			b.WriteString(hanziDigits[0])
		}
		b.WriteString(part)
		b.WriteString(hanziGroups[len(groups)-1-gi])
		pendingZero = false
	}

	out := b.String()
	// 10 through 19 read as 十X, not 一十X.
	if strings.HasPrefix(out, "一十") {
		out = strings.TrimPrefix(out, "一")
	}
	return out
}

// hanziGroup reads up to four digits. It reports whether the group has a
// leading zero gap that needs a 零 connector before it.
func hanziGroup(digits string) (string, bool) {
	var b strings.Builder
	n := len(digits)
	lastWasZero := false
	wrote := false
	for i, d := range digits {
		v := int(d - '0')
		if v == 0 {
			lastWasZero = wrote
			continue
		}
		if lastWasZero {
			b.WriteString(hanziDigits[0])
		}
		b.WriteString(hanziDigits[v])
		b.WriteString(hanziUnits[n-1-i])
		lastWasZero = false
		wrote = true
	}
	leadingZero := len(digits) == 4 && digits[0] == '0' && b.Len() > 0
	return b.String(), leadingZero
}
