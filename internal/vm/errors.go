package vm

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jcorbin/sltf/internal/syntax"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrUnknownWord    = errors.New("unknown word")
	ErrQueueOverflow  = errors.New("instruction queue overflow")

	errEmptyQueue = errors.New("step called with an empty instruction queue")
)

type underflowError struct {
	word       string
	need, have int
}

func (err underflowError) Error() string {
	return fmt.Sprintf("%v: %v needs %v values, have %v", ErrStackUnderflow, err.word, err.need, err.have)
}

func (err underflowError) Unwrap() error { return ErrStackUnderflow }

type typeError struct {
	word     string
	operands []syntax.Prim
}

func (err typeError) Error() string {
	parts := make([]string, len(err.operands))
	for i, val := range err.operands {
		parts[i] = fmt.Sprintf("%v(%v)", kindOf(val), val)
	}
	return fmt.Sprintf("%v: %v expects integers, got %v", ErrTypeMismatch, err.word, strings.Join(parts, " "))
}

func (err typeError) Unwrap() error { return ErrTypeMismatch }

type unknownWordError struct {
	name    string
	closest string
}

func (err unknownWordError) Error() string {
	if err.closest != "" {
		return fmt.Sprintf("%v %q, did you mean %q?", ErrUnknownWord, err.name, err.closest)
	}
	return fmt.Sprintf("%v %q", ErrUnknownWord, err.name)
}

func (err unknownWordError) Unwrap() error { return ErrUnknownWord }

type queueLimitError int

func (limit queueLimitError) Error() string {
	return fmt.Sprintf("%v: more than %v pending instructions", ErrQueueOverflow, int(limit))
}

func (limit queueLimitError) Unwrap() error { return ErrQueueOverflow }

// closestWord picks the dictionary name most similar to an unknown one.
func closestWord(name string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	if ranks := fuzzy.RankFindFold(name, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	const maxDistance = 2
	best, bestDist := "", maxDistance+1
	for _, cand := range candidates {
		if d := fuzzy.LevenshteinDistance(name, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func kindOf(val syntax.Prim) string {
	switch val.(type) {
	case syntax.Int:
		return "int"
	case syntax.Str:
		return "str"
	}
	return fmt.Sprintf("%T", val)
}
