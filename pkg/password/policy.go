package password

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultMinLength     = 8
	DefaultMaxSimilarity = 0.7
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

var nonWordRe = regexp.MustCompile(`\W+`)

// Attribute is a named user attribute the password must not resemble.
type Attribute struct {
	Label string // human label used in the message, e.g. "email address"
	Value string
}

// Policy validates candidate passwords. Every rule runs; all violations are
// returned together.
type Policy struct {
	MinLength     int
	MaxSimilarity float64
	common        map[string]struct{}
}

// DefaultPolicy returns the policy used for signup.
func DefaultPolicy() *Policy {
	return NewPolicy(DefaultMinLength, DefaultMaxSimilarity)
}

// NewPolicy builds a Policy with the embedded common-password list.
func NewPolicy(minLength int, maxSimilarity float64) *Policy {
	common := make(map[string]struct{})
	for _, line := range strings.Split(commonPasswordsRaw, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line != "" {
			common[line] = struct{}{}
		}
	}
	return &Policy{MinLength: minLength, MaxSimilarity: maxSimilarity, common: common}
}

// Validate returns one human-readable message per violated rule.
func (p *Policy) Validate(password string, attrs ...Attribute) []string {
	var msgs []string

	if msg := p.checkSimilarity(password, attrs); msg != "" {
		msgs = append(msgs, msg)
	}
	if utf8.RuneCountInString(password) < p.MinLength {
		msgs = append(msgs, fmt.Sprintf(
			"This password is too short. It must contain at least %d characters.", p.MinLength))
	}
	if len(password) > MaxBytes {
		msgs = append(msgs, fmt.Sprintf(
			"This password is too long. It must contain at most %d bytes.", MaxBytes))
	}
	if _, ok := p.common[strings.ToLower(strings.TrimSpace(password))]; ok {
		msgs = append(msgs, "This password is too common.")
	}
	if isNumeric(password) {
		msgs = append(msgs, "This password is entirely numeric.")
	}
	return msgs
}

func (p *Policy) checkSimilarity(password string, attrs []Attribute) string {
	if p.MaxSimilarity <= 0 || password == "" {
		return ""
	}
	pw := strings.ToLower(password)
	for _, attr := range attrs {
		if attr.Value == "" {
			continue
		}
		value := strings.ToLower(attr.Value)
		parts := append(nonWordRe.Split(value, -1), value)
		for _, part := range parts {
			if part == "" || exceedsLengthRatio(pw, part, p.MaxSimilarity) {
				continue
			}
			if quickRatio(pw, part) >= p.MaxSimilarity {
				return fmt.Sprintf("The password is too similar to the %s.", attr.Label)
			}
		}
	}
	return ""
}

// exceedsLengthRatio skips comparisons where the password is so much longer
// than the attribute that similarity cannot reach the threshold.
func exceedsLengthRatio(password, value string, maxSimilarity float64) bool {
	pwdLen := utf8.RuneCountInString(password)
	valueLen := utf8.RuneCountInString(value)
	return pwdLen >= 10*valueLen && float64(valueLen) < maxSimilarity/2*float64(pwdLen)
}

// quickRatio is the upper bound on sequence similarity given by the size of
// the multiset intersection of runes: 2*M / (len(a)+len(b)).
func quickRatio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}
	avail := make(map[rune]int)
	for _, r := range b {
		avail[r]++
	}
	matches := 0
	for _, r := range a {
		if avail[r] > 0 {
			avail[r]--
			matches++
		}
	}
	return 2 * float64(matches) / float64(total)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
