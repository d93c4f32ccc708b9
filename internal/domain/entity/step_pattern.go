package entity

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrEmptyStepPattern     = errors.New("step pattern cannot be empty")
	ErrUnbalancedBraces     = errors.New("step pattern has unbalanced braces")
	ErrEmptyPlaceholderName = errors.New("placeholder name cannot be empty")
	ErrDuplicatePlaceholder = errors.New("placeholder name is used twice")
	ErrUnknownSlotType      = errors.New("unknown placeholder slot type")
)

// StepRole is the part of a scenario a step binding belongs to.
type StepRole int

const (
	// Given is a precondition step.
	Given StepRole = iota
	// When is an action step.
	When
	// Then is a verification step.
	Then
)

// String returns the Gherkin keyword for the role.
func (r StepRole) String() string {
	switch r {
	case Given:
		return "Given"
	case When:
		return "When"
	case Then:
		return "Then"
	default:
		return "Step"
	}
}

// SlotType decides which characters a placeholder may capture.
type SlotType string

const (
	// WordSlot captures text without quotes, parentheses or colons. It is the
	// default so that "the {monitor} monitor is {state}" matches neither
	// "the X monitor is connected (via Y)" nor an arrangement such as
	// "the monitors get arranged: the X monitor is left of Y".
	WordSlot SlotType = "word"
	// TextSlot captures any non-empty text.
	TextSlot SlotType = "text"
)

var slotExpressions = map[SlotType]string{
	WordSlot: `([^"():]+)`,
	TextSlot: `(.+)`,
}

// Placeholder is a named, typed slot inside a step pattern.
type Placeholder struct {
	Name string
	Type SlotType
}

// patternSegment is either a literal run of text or a placeholder.
type patternSegment struct {
	literal     string
	placeholder *Placeholder
}

// StepPattern is a trigger phrase made of literal segments and named
// placeholders, e.g. `the new profile "{profile_name}" is saved`.
type StepPattern struct {
	phrase   string
	segments []patternSegment
}

// ParseStepPattern parses a trigger phrase. Placeholders are written as
// {name} for a word slot or {name:text} for a free text slot.
func ParseStepPattern(phrase string) (StepPattern, error) {
	if strings.TrimSpace(phrase) == "" {
		return StepPattern{}, ErrEmptyStepPattern
	}

	var (
		segments []patternSegment
		literal  strings.Builder
		seen     = make(map[string]bool)
	)

	rest := phrase
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		closing := strings.IndexByte(rest, '}')

		if open < 0 {
			if closing >= 0 {
				return StepPattern{}, errors.Wrapf(ErrUnbalancedBraces, "pattern %q", phrase)
			}
			literal.WriteString(rest)
			break
		}
		if closing >= 0 && closing < open {
			return StepPattern{}, errors.Wrapf(ErrUnbalancedBraces, "pattern %q", phrase)
		}

		literal.WriteString(rest[:open])
		rest = rest[open+1:]

		end := strings.IndexByte(rest, '}')
		if end < 0 || strings.IndexByte(rest[:end], '{') >= 0 {
			return StepPattern{}, errors.Wrapf(ErrUnbalancedBraces, "pattern %q", phrase)
		}

		ph, err := parsePlaceholder(rest[:end])
		if err != nil {
			return StepPattern{}, errors.Wrapf(err, "pattern %q", phrase)
		}
		if seen[ph.Name] {
			return StepPattern{}, errors.Wrapf(ErrDuplicatePlaceholder, "pattern %q: %s", phrase, ph.Name)
		}
		seen[ph.Name] = true

		if literal.Len() > 0 {
			segments = append(segments, patternSegment{literal: literal.String()})
			literal.Reset()
		}
		segments = append(segments, patternSegment{placeholder: &ph})
		rest = rest[end+1:]
	}

	if literal.Len() > 0 {
		segments = append(segments, patternSegment{literal: literal.String()})
	}

	return StepPattern{phrase: phrase, segments: segments}, nil
}

// MustParseStepPattern is like ParseStepPattern but panics on error.
// It is meant for package-level step tables.
func MustParseStepPattern(phrase string) StepPattern {
	p, err := ParseStepPattern(phrase)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePlaceholder(body string) (Placeholder, error) {
	name, slot, hasType := strings.Cut(body, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Placeholder{}, ErrEmptyPlaceholderName
	}

	ph := Placeholder{Name: name, Type: WordSlot}
	if hasType {
		ph.Type = SlotType(strings.TrimSpace(slot))
		if _, ok := slotExpressions[ph.Type]; !ok {
			return Placeholder{}, errors.Wrapf(ErrUnknownSlotType, "%q", slot)
		}
	}
	return ph, nil
}

// String returns the phrase the pattern was parsed from.
func (p StepPattern) String() string {
	return p.phrase
}

// Placeholders returns the placeholders in the order they appear.
func (p StepPattern) Placeholders() []Placeholder {
	var out []Placeholder
	for _, s := range p.segments {
		if s.placeholder != nil {
			out = append(out, *s.placeholder)
		}
	}
	return out
}

// Expression returns the anchored regular expression source for the pattern,
// with one capture group per placeholder.
func (p StepPattern) Expression() string {
	var b strings.Builder
	b.WriteString("^")
	for _, s := range p.segments {
		if s.placeholder != nil {
			b.WriteString(slotExpressions[s.placeholder.Type])
			continue
		}
		b.WriteString(regexp.QuoteMeta(s.literal))
	}
	b.WriteString("$")
	return b.String()
}

// Regexp compiles Expression. The expression is built from quoted literals and
// fixed slot expressions, so compilation cannot fail for a parsed pattern.
func (p StepPattern) Regexp() *regexp.Regexp {
	return regexp.MustCompile(p.Expression())
}

// Match reports whether text matches the pattern and returns the captured
// values keyed by placeholder name.
func (p StepPattern) Match(text string) (map[string]string, bool) {
	m := p.Regexp().FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	values := make(map[string]string, len(m)-1)
	for i, ph := range p.Placeholders() {
		values[ph.Name] = m[i+1]
	}
	return values, true
}
