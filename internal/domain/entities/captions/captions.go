// Package captions provides domain entities for the AI caption-generation
// collaborator: tones, platform optimization rules and the parsed variation
// payload returned to the dashboard.
package captions

import (
	"fmt"
	"strings"
)

// Tone selects the writing style requested from the caption gateway.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneWitty        Tone = "witty"
	ToneBold         Tone = "bold"
	ToneCasual       Tone = "casual"
	ToneInspiring    Tone = "inspiring"
)

// ValidTone reports whether t is one of the five supported tones.
func ValidTone(t Tone) bool {
	switch t {
	case ToneProfessional, ToneWitty, ToneBold, ToneCasual, ToneInspiring:
		return true
	}
	return false
}

// Platform selects which social network the captions are optimized for.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformThreads   Platform = "threads"
)

// Rules captures per-platform optimization constraints fed into the prompt.
type Rules struct {
	MaxLength    int
	HashtagCount string
	Style        string
	Algorithm    string
}

var platformRules = map[Platform]Rules{
	PlatformInstagram: {
		MaxLength:    2200,
		HashtagCount: "20-30",
		Style:        "Visual-first with line breaks, use emojis generously",
		Algorithm:    "Prioritize engagement bait, use trending hashtags, include call-to-action",
	},
	PlatformLinkedIn: {
		MaxLength:    3000,
		HashtagCount: "3-5",
		Style:        "Professional with value-driven content",
		Algorithm:    "Focus on industry insights, thought leadership, use fewer hashtags",
	},
	PlatformTwitter: {
		MaxLength:    280,
		HashtagCount: "1-2",
		Style:        "Concise and punchy, thread-friendly",
		Algorithm:    "Optimize for retweets, keep it short, use trending hashtags sparingly",
	},
	PlatformThreads: {
		MaxLength:    500,
		HashtagCount: "0-3",
		Style:        "Conversational and authentic",
		Algorithm:    "Focus on storytelling, minimal hashtags, encourage replies",
	},
}

// RulesFor returns the optimization rules for a platform, defaulting to
// Instagram for anything unrecognized.
func RulesFor(p Platform) Rules {
	if rules, ok := platformRules[p]; ok {
		return rules
	}
	return platformRules[PlatformInstagram]
}

// Variation is one generated caption with its discoverability metadata.
type Variation struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Keywords []string `json:"keywords"`
	Platform Platform `json:"platform"`
}

// ParseVariations extracts up to three caption variations from the
// gateway's plain-text response. The gateway is prompted to emit blocks
// headed "VARIATION A/B/C:" with trailing "HASHTAGS:" and "KEYWORDS:"
// lines; anything malformed is skipped rather than failing the batch.
func ParseVariations(generated string, platform Platform) []Variation {
	var variations []Variation

	blocks := splitVariationBlocks(generated)
	if len(blocks) > 3 {
		blocks = blocks[:3]
	}

	for _, block := range blocks {
		var captionLines, hashtags, keywords = []string{}, []string{}, []string{}

		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			upper := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(upper, "HASHTAGS:"):
				for _, tag := range strings.Fields(line[len("HASHTAGS:"):]) {
					if strings.HasPrefix(tag, "#") {
						hashtags = append(hashtags, tag)
					}
				}
			case strings.HasPrefix(upper, "KEYWORDS:"):
				for _, kw := range strings.Split(line[len("KEYWORDS:"):], ",") {
					if kw = strings.TrimSpace(kw); kw != "" {
						keywords = append(keywords, kw)
					}
				}
			case strings.HasPrefix(upper, "VARIATION"):
				// stray header fragment, drop it
			default:
				captionLines = append(captionLines, line)
			}
		}

		caption := strings.TrimSpace(strings.Join(captionLines, "\n"))
		if caption != "" {
			variations = append(variations, Variation{
				Caption:  caption,
				Hashtags: hashtags,
				Keywords: keywords,
				Platform: platform,
			})
		}
	}

	return variations
}

func splitVariationBlocks(generated string) []string {
	var blocks []string
	for _, header := range []string{"VARIATION A:", "VARIATION B:", "VARIATION C:"} {
		idx := indexFold(generated, header)
		if idx < 0 {
			continue
		}
		rest := generated[idx+len(header):]
		if next := nextVariationIndex(rest); next >= 0 {
			rest = rest[:next]
		}
		if strings.TrimSpace(rest) != "" {
			blocks = append(blocks, rest)
		}
	}
	return blocks
}

func nextVariationIndex(s string) int {
	for _, header := range []string{"VARIATION A:", "VARIATION B:", "VARIATION C:"} {
		if idx := indexFold(s, header); idx >= 0 {
			return idx
		}
	}
	return -1
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToUpper(s), strings.ToUpper(substr))
}

// BuildSystemPrompt renders the generation instructions for a platform.
func BuildSystemPrompt(platform Platform) string {
	rules := RulesFor(platform)
	name := strings.ToUpper(string(platform))

	return fmt.Sprintf(`You are an expert social media content creator specializing in %[1]s. Generate 3 DISTINCT caption variations optimized for %[2]s's algorithm.

PLATFORM OPTIMIZATION FOR %[1]s:
- Maximum length: %[3]d characters
- Style: %[4]s
- Algorithm optimization: %[5]s
- Hashtag count: %[6]s

VARIATION REQUIREMENTS:
- Variation A: Hook-focused (grab attention in first line)
- Variation B: Story-driven (narrative approach)
- Variation C: Direct and concise (straight to the point)

Each variation must include:
1. The caption text optimized for %[2]s
2. Suggested hashtags (%[6]s) on a new line starting with "HASHTAGS:"
3. Relevant keywords for discoverability on a new line starting with "KEYWORDS:"

Format each variation exactly as:
VARIATION A:
[caption text]
HASHTAGS: #tag1 #tag2 #tag3
KEYWORDS: keyword1, keyword2, keyword3

VARIATION B:
[caption text]
HASHTAGS: #tag1 #tag2 #tag3
KEYWORDS: keyword1, keyword2, keyword3

VARIATION C:
[caption text]
HASHTAGS: #tag1 #tag2 #tag3
KEYWORDS: keyword1, keyword2, keyword3`, name, string(platform), rules.MaxLength, rules.Style, rules.Algorithm, rules.HashtagCount)
}

// BuildUserPrompt renders the per-request instruction line.
func BuildUserPrompt(tone Tone, extraPrompt string) string {
	if extraPrompt != "" {
		return fmt.Sprintf("Additional context: %s\n\nAnalyze this image and generate captions with the %s tone.", extraPrompt, tone)
	}
	return fmt.Sprintf("Analyze this image and generate captions with the %s tone.", tone)
}
