package captions

import (
	"strings"
	"testing"
)

const sampleResponse = `VARIATION A:
Stop scrolling. This is the sign you were waiting for.
HASHTAGS: #motivation #createdaily #viral
KEYWORDS: motivation, content creation, social media

VARIATION B:
Last spring we almost gave up. Then one post changed everything.
HASHTAGS: #storytime #growth
KEYWORDS: storytelling, growth

VARIATION C:
Three tools. One workflow. Zero excuses.
HASHTAGS: #productivity
KEYWORDS: productivity, tools`

func TestParseVariationsFullResponse(t *testing.T) {
	variations := ParseVariations(sampleResponse, PlatformInstagram)
	if len(variations) != 3 {
		t.Fatalf("got %d variations, want 3", len(variations))
	}

	first := variations[0]
	if !strings.HasPrefix(first.Caption, "Stop scrolling.") {
		t.Errorf("caption A = %q", first.Caption)
	}
	if len(first.Hashtags) != 3 || first.Hashtags[0] != "#motivation" {
		t.Errorf("hashtags A = %v", first.Hashtags)
	}
	if len(first.Keywords) != 3 || first.Keywords[1] != "content creation" {
		t.Errorf("keywords A = %v", first.Keywords)
	}
	if first.Platform != PlatformInstagram {
		t.Errorf("platform = %q, want instagram", first.Platform)
	}

	if variations[2].Caption != "Three tools. One workflow. Zero excuses." {
		t.Errorf("caption C = %q", variations[2].Caption)
	}
}

func TestParseVariationsCaseInsensitiveHeaders(t *testing.T) {
	response := "variation a:\nLowercase headers still work.\nhashtags: #ok\nkeywords: resilience"
	variations := ParseVariations(response, PlatformTwitter)
	if len(variations) != 1 {
		t.Fatalf("got %d variations, want 1", len(variations))
	}
	if variations[0].Caption != "Lowercase headers still work." {
		t.Errorf("caption = %q", variations[0].Caption)
	}
	if len(variations[0].Hashtags) != 1 || variations[0].Hashtags[0] != "#ok" {
		t.Errorf("hashtags = %v", variations[0].Hashtags)
	}
}

func TestParseVariationsSkipsEmptyBlocks(t *testing.T) {
	response := "VARIATION A:\n\nHASHTAGS: #empty\nVARIATION B:\nOnly this one has text.\n"
	variations := ParseVariations(response, PlatformLinkedIn)
	if len(variations) != 1 {
		t.Fatalf("got %d variations, want 1", len(variations))
	}
	if variations[0].Caption != "Only this one has text." {
		t.Errorf("caption = %q", variations[0].Caption)
	}
}

func TestParseVariationsIgnoresNonHashtagTokens(t *testing.T) {
	response := "VARIATION A:\nCaption.\nHASHTAGS: #real notatag #also"
	variations := ParseVariations(response, PlatformInstagram)
	if len(variations) != 1 {
		t.Fatalf("got %d variations, want 1", len(variations))
	}
	want := []string{"#real", "#also"}
	got := variations[0].Hashtags
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("hashtags = %v, want %v", got, want)
	}
}

func TestParseVariationsNoHeaders(t *testing.T) {
	if got := ParseVariations("just some prose without structure", PlatformInstagram); len(got) != 0 {
		t.Fatalf("got %d variations, want 0", len(got))
	}
}

func TestValidTone(t *testing.T) {
	for _, tone := range []Tone{ToneProfessional, ToneWitty, ToneBold, ToneCasual, ToneInspiring} {
		if !ValidTone(tone) {
			t.Errorf("ValidTone(%q) = false", tone)
		}
	}
	if ValidTone(Tone("sarcastic")) {
		t.Error("ValidTone(sarcastic) = true, want false")
	}
}

func TestRulesForDefaultsToInstagram(t *testing.T) {
	unknown := RulesFor(Platform("myspace"))
	instagram := RulesFor(PlatformInstagram)
	if unknown != instagram {
		t.Fatalf("unknown platform rules = %+v, want instagram rules %+v", unknown, instagram)
	}
}

func TestBuildSystemPromptEmbedsPlatformRules(t *testing.T) {
	prompt := BuildSystemPrompt(PlatformTwitter)
	if !strings.Contains(prompt, "TWITTER") {
		t.Error("prompt missing platform name")
	}
	if !strings.Contains(prompt, "VARIATION A:") || !strings.Contains(prompt, "HASHTAGS:") {
		t.Error("prompt missing output format instructions")
	}
}

func TestBuildUserPrompt(t *testing.T) {
	plain := BuildUserPrompt(ToneWitty, "")
	if !strings.Contains(plain, "witty tone") {
		t.Errorf("plain prompt = %q", plain)
	}

	extra := BuildUserPrompt(ToneBold, "product launch for a coffee brand")
	if !strings.Contains(extra, "Additional context: product launch for a coffee brand") {
		t.Errorf("extra prompt = %q", extra)
	}
}
