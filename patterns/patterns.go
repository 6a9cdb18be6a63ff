package patterns

import (
	"regexp"
	"strings"
)

// Labels reported by the default detector.
const (
	Short         = "short"
	AllDigits     = "all-digits"
	RepeatedChars = "repeated-chars"
	Keyboard      = "keyboard-pattern"
	YearSuffix    = "year-suffix"
)

const minLength = 8
const minRepeatRun = 4

// keyboardRuns are adjacency fragments matched case-insensitively anywhere in
// the password.
var keyboardRuns = []string{"qwert", "asdf", "zxcv", "1q2w", "qaz"}

// weakBases are checked in order; only the first base found is reported, as a
// "contains-<base>" label.
var weakBases = []string{"password", "passwd", "admin", "welcome", "letmein", "iloveyou"}

var allDigitsRegexp = regexp.MustCompile(`^[0-9]+$`)
var yearSuffixRegexp = regexp.MustCompile(`[0-9]{4}$`)

// Check flags a single weak structural pattern. Checks are independent of one
// another; a password can match any number of them.
type Check interface {
	Check(password string) (string, bool)
}

type Detector struct {
	checks []Check
}

func NewDetector(checks ...Check) *Detector {
	return &Detector{
		checks: checks,
	}
}

// NewDefaultDetector returns a detector running the standard checks in a fixed
// order. The order is part of the contract: labels come back in this sequence.
func NewDefaultDetector() *Detector {
	return NewDetector(
		&lengthCheck{min: minLength},
		&regexpCheck{re: allDigitsRegexp, label: AllDigits},
		&repeatedRunCheck{min: minRepeatRun},
		&fragmentCheck{fragments: keyboardRuns, label: Keyboard},
		&regexpCheck{re: yearSuffixRegexp, label: YearSuffix},
		&weakBaseCheck{bases: weakBases},
	)
}

// Detect returns the labels of every check the password matches.
func (d *Detector) Detect(password string) []string {
	var labels []string

	for _, check := range d.checks {
		if label, ok := check.Check(password); ok {
			labels = append(labels, label)
		}
	}

	return labels
}

// Detect runs the default detector.
func Detect(password string) []string {
	return NewDefaultDetector().Detect(password)
}

type lengthCheck struct {
	min int
}

func (c *lengthCheck) Check(password string) (string, bool) {
	if len(password) < c.min {
		return Short, true
	}

	return "", false
}

type regexpCheck struct {
	re    *regexp.Regexp
	label string
}

func (c *regexpCheck) Check(password string) (string, bool) {
	if c.re.MatchString(password) {
		return c.label, true
	}

	return "", false
}

type repeatedRunCheck struct {
	min int
}

// Check matches a password that is one character repeated min or more times.
// RE2 has no backreferences, so this is a plain scan.
func (c *repeatedRunCheck) Check(password string) (string, bool) {
	runes := []rune(password)
	if len(runes) < c.min {
		return "", false
	}

	for _, r := range runes[1:] {
		if r != runes[0] {
			return "", false
		}
	}

	return RepeatedChars, true
}

type fragmentCheck struct {
	fragments []string
	label     string
}

func (c *fragmentCheck) Check(password string) (string, bool) {
	lowered := strings.ToLower(password)

	for _, fragment := range c.fragments {
		if strings.Contains(lowered, fragment) {
			return c.label, true
		}
	}

	return "", false
}

type weakBaseCheck struct {
	bases []string
}

// Check reports at most one label, for the first base word found in order.
func (c *weakBaseCheck) Check(password string) (string, bool) {
	lowered := strings.ToLower(password)

	for _, base := range c.bases {
		if strings.Contains(lowered, base) {
			return "contains-" + base, true
		}
	}

	return "", false
}
