package processor

import (
	"fmt"
	"regexp"
	"strings"

	"tripvoice/internal/observability"
)

// DestinationProcessor scans free text for known destination phrases. It is
// a pure in-memory matcher: no network, no I/O, safe for concurrent use.
type DestinationProcessor struct {
	dictionary Dictionary
	patterns   []phrasePattern
	logger     *observability.Logger
}

// phrasePattern pairs a dictionary phrase with its compiled whole-phrase
// matcher. Patterns are kept in scan order.
type phrasePattern struct {
	phrase string
	re     *regexp.Regexp
}

// New builds a DestinationProcessor, validating the dictionary and compiling
// one pattern per phrase up front.
func New(dictionary Dictionary, logger *observability.Logger) (*DestinationProcessor, error) {
	if err := dictionary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid destination dictionary: %w", err)
	}

	var patterns []phrasePattern
	for _, category := range dictionary {
		for _, phrase := range category.Phrases {
			re, err := compilePhrase(phrase)
			if err != nil {
				return nil, fmt.Errorf("failed to compile phrase %q: %w", phrase, err)
			}
			patterns = append(patterns, phrasePattern{phrase: phrase, re: re})
		}
	}

	return &DestinationProcessor{
		dictionary: dictionary,
		patterns:   patterns,
		logger:     logger,
	}, nil
}

// compilePhrase builds a whole-phrase matcher: the phrase must be bounded by
// a non-alphanumeric character or the string edge on both sides, so "iran"
// does not match inside "iranian". Boundaries are ASCII-alphanumeric only;
// scripts without delimiters get no boundary protection.
func compilePhrase(phrase string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(phrase) + `(?:$|[^a-z0-9])`)
}

// Extract returns the title-cased destinations mentioned in text,
// case-insensitively deduplicated, in dictionary scan order (category order,
// then list order). Empty text or no matches yields an empty result, never
// an error.
func (p *DestinationProcessor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	seen := make(map[string]struct{})
	var destinations []string

	for _, pattern := range p.patterns {
		if !pattern.re.MatchString(lowered) {
			continue
		}
		if _, ok := seen[pattern.phrase]; ok {
			continue
		}
		seen[pattern.phrase] = struct{}{}
		destinations = append(destinations, titleCase(pattern.phrase))
	}

	return destinations
}

// Dictionary returns the immutable dictionary the processor scans with.
func (p *DestinationProcessor) Dictionary() Dictionary {
	return p.dictionary
}

// titleCase capitalizes the first letter of each space-separated word.
// Dictionary phrases are lowercase ASCII, so byte indexing is safe.
func titleCase(phrase string) string {
	words := strings.Split(phrase, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
