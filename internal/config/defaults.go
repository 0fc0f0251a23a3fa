package config

import (
	_ "embed"

	"github.com/vovakirdan/memylon/internal/anim"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultLinkTemplate builds a search link from a card name.
const DefaultLinkTemplate = "https://en.wikipedia.org/wiki/Special:Search?search=%s+programming+language"

var defaultNames = []string{
	"Lua", "Erlang", "Clojure", "Factor", "D", "Scratch", "Self",
	"PowerShell", "Haskell", "Java", "Ruby", "Scala", "Ada", "Smalltalk",
	"Mathematica", "Ioke", "Squirrel", "Perl6", "Tcl", "REBOL", "C++",
	"Eiffel", "Groovy", "Io", "Mercury", "VBA", "PHP", "Oz", "Lisp", "J",
	"Boo", "Delphi", "Pure", "Qi", "Coq", "Fortran", "Curl", "Clean",
	"Curry", "LaTEX", "C", "Miranda", "R", "Squeak", "Go", "Python",
	"ECMAScript", "CaML", "JavaScript", "Nemerle", "Prolog", "AliceML",
	"Logo",
}

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	deck := make([]DeckEntry, len(defaultNames))
	for i, name := range defaultNames {
		deck[i] = DeckEntry{Name: name}
	}

	return MemoryConfig{
		Timing: TimingConfig{
			FrameMS:   50,
			FlipMS:    500,
			HideMS:    500,
			ShowMS:    300,
			FlashMS:   6000,
			StaggerMS: 80,
		},
		Caption: anim.DefaultText,
		Match: MatchConfig{
			DurationMS: 2000,
			Caption: anim.TextParams{
				SizeFrom:  anim.Val(10),
				SizeTo:    anim.Val(300),
				AlphaFrom: anim.Val(1),
				AlphaTo:   anim.Val(0.01),
			},
		},
		Finale: FinaleConfig{
			RevealMS: 11500,
			Captions: []FinaleCaption{
				{
					DelayMS:    1000,
					DurationMS: 500,
					Caption: anim.TextParams{
						Text:     "This is it.",
						Color:    "#5F5B60",
						AlphaTo:  anim.Val(0.8),
						YFrom:    anim.Val(30),
						XFrom:    anim.Val(400),
						XTo:      anim.Val(190),
						SizeFrom: anim.Val(50),
					},
				},
				{
					DelayMS:    2000,
					DurationMS: 700,
					Caption: anim.TextParams{
						Text:     "the language wars",
						Color:    "#735551",
						YFrom:    anim.Val(75),
						XFrom:    anim.Val(-200),
						XTo:      anim.Val(190),
						SizeFrom: anim.Val(30),
					},
				},
				{
					DelayMS:    2700,
					DurationMS: 1000,
					Caption: anim.TextParams{
						Text:     "ARE OVER.",
						Color:    "#81878C",
						XFrom:    anim.Val(190),
						YTo:      anim.Val(120),
						SizeFrom: anim.Val(0),
						SizeTo:   anim.Val(40),
					},
				},
				{
					DelayMS:    5000,
					DurationMS: 1500,
					Caption: anim.TextParams{
						Text:     "and the winner is...",
						Color:    "#B2A89B",
						XFrom:    anim.Val(500),
						XTo:      anim.Val(190),
						YFrom:    anim.Val(160),
						SizeFrom: anim.Val(30),
					},
				},
				{
					DelayMS:    6500,
					DurationMS: 5000,
					Caption: anim.TextParams{
						Text:     WinnerPlaceholder,
						Color:    "#D91122",
						XFrom:    anim.Val(-100),
						XTo:      anim.Val(190),
						YFrom:    anim.Val(210),
						SizeFrom: anim.Val(0),
						SizeTo:   anim.Val(55),
					},
				},
			},
		},
		LinkTemplate: DefaultLinkTemplate,
		Cards:        deck,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
