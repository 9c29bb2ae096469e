package patterntree

type Option func(t *Tree)

func WithWildcard(wildcard string) Option {
	return func(t *Tree) {
		if len(wildcard) != 0 {
			t.wildcard = wildcard
		}
	}
}

func WithPatternSeparator(separator string) Option {
	return func(t *Tree) {
		if len(separator) != 0 {
			t.patternSeparator = separator
		}
	}
}

func WithPathSeparator(separator string) Option {
	return func(t *Tree) {
		if len(separator) != 0 {
			t.pathSeparator = separator
		}
	}
}

func WithTieBreak(enabled bool) Option {
	return func(t *Tree) {
		t.tieBreak = enabled
	}
}
