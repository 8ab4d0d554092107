package norm

import "testing"

func TestEnglishNormalize(t *testing.T) {
	n := NewEnglish()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"integer", "I have 3 cats", "I have three cats"},
		{"larger integer", "wait 12 days", "wait twelve days"},
		{"decimal", "pi is 3.14", "pi is three point one four"},
		{"dollars", "it costs $5", "it costs five dollars"},
		{"dollars and cents", "paid $12.50 total", "paid twelve dollars fifty cents total"},
		{"thousands separator", "1,000 people", "one thousand people"},
		{"plain four digits stay whole", "wait 1000 days", "wait one thousand days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNumberPatternMatchesWholeNumbers(t *testing.T) {
	// Plain digit runs of any length must match as one token; the
	// thousands-separator branch must not peel off a 3-digit prefix.
	tests := []struct {
		in   string
		want []string
	}{
		{"2024", []string{"2024"}},
		{"wait 1234 days", []string{"1234"}},
		{"$1500", []string{"$1500"}},
		{"1,234,567", []string{"1,234,567"}},
		{"12.50 and 3", []string{"12.50", "3"}},
	}

	for _, tt := range tests {
		got := numberPattern.FindAllString(tt.in, -1)
		if len(got) != len(tt.want) {
			t.Errorf("FindAllString(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("FindAllString(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestChineseNormalize(t *testing.T) {
	n := NewChinese()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain hanzi untouched", "你好世界", "你好世界"},
		{"single digit", "我有3只猫", "我有三只猫"},
		{"teens", "等10天", "等十天"},
		{"zero gap", "共105人", "共一百零五人"},
		{"year", "2024年", "二千零二十四年"},
		{"ten thousand", "10000元", "一万元"},
		{"decimal", "重3.5斤", "重三点五斤"},
		{"full width folds", "ＡＢＣ１", "ABC一"},
		{"bare zero", "0度", "零度"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHanziInteger(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "零"},
		{"7", "七"},
		{"10", "十"},
		{"14", "十四"},
		{"21", "二十一"},
		{"100", "一百"},
		{"110", "一百一十"},
		{"1001", "一千零一"},
		{"10001", "一万零一"},
		{"100500", "十万零五百"},
		{"100000000", "一亿"},
	}

	for _, tt := range tests {
		if got := hanziInteger(tt.in); got != tt.want {
			t.Errorf("hanziInteger(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
