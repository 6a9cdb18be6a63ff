package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/passrisk/passrisk/entropy"
	"github.com/passrisk/passrisk/patterns"
	"github.com/passrisk/passrisk/suggest"
)

// Strength labels, banded on estimated entropy alone.
const (
	StrengthWeak     = "Weak"
	StrengthModerate = "Moderate"
	StrengthStrong   = "Strong"
)

const weakBits = 40.0
const moderateBits = 60.0

// suggestBelowBits is the entropy ceiling under which a strengthening hint is
// always offered.
const suggestBelowBits = 50.0

//go:generate counterfeiter . RankLookup

// RankLookup maps an exact password string to its popularity rank in a
// breached-password list, 1 being the most common. Lookups are exact: no
// trimming, no case folding.
type RankLookup interface {
	Lookup(password string) (int, bool)
}

// Analysis is everything the analyzer reports about one password. The
// password itself is never part of the record, so an Analysis is safe to log
// or serialize as-is.
type Analysis struct {
	EntropyBits      float64  `json:"entropy_bits"`
	Strength         string   `json:"strength"`
	Tips             []string `json:"tips"`
	InTop            bool     `json:"in_top"`
	Rank             int      `json:"rank,omitempty"`
	TimeToCompromise string   `json:"time_to_compromise"`
}

type Analyzer struct {
	ranks    RankLookup
	detector *patterns.Detector
	hints    *suggest.Generator
}

// New returns an analyzer backed by the given rank lookup and hint generator.
// ranks may be nil, in which case breach-list warnings are skipped and the
// analyzer runs on entropy and patterns alone. A nil hints falls back to the
// shared random source.
func New(ranks RankLookup, hints *suggest.Generator) *Analyzer {
	if hints == nil {
		hints = suggest.NewGenerator(nil)
	}

	return &Analyzer{
		ranks:    ranks,
		detector: patterns.NewDefaultDetector(),
		hints:    hints,
	}
}

// Analyze scores a single password. Leading and trailing whitespace is
// trimmed before any check runs. The call never fails; with no rank lookup
// configured it simply produces no breach-list findings.
func (a *Analyzer) Analyze(password string) Analysis {
	trimmed := strings.TrimSpace(password)

	bits := entropy.Estimate(trimmed)
	labels := a.detector.Detect(trimmed)

	var rank int
	var inTop bool
	if a.ranks != nil {
		rank, inTop = a.ranks.Lookup(trimmed)
	}

	var tips []string
	if inTop {
		tips = append(tips, "This password appears in public breached-password lists. Do NOT use it.")
	}
	if len(labels) > 0 {
		tips = append(tips, "Weak pattern detected: "+strings.Join(labels, ", "))
	}
	if inTop || bits < suggestBelowBits {
		hint := a.hints.Hint()
		tips = append(tips, fmt.Sprintf("Try adding: %s (mix these characters somewhere into your password)", hint))
	}

	var strength string
	switch {
	case bits < weakBits:
		strength = StrengthWeak
	case bits < moderateBits:
		strength = StrengthModerate
	default:
		strength = StrengthStrong
	}

	return Analysis{
		EntropyBits:      math.Round(bits*100) / 100,
		Strength:         strength,
		Tips:             tips,
		InTop:            inTop,
		Rank:             rank,
		TimeToCompromise: TimeToCompromise(bits, rank, inTop),
	}
}
