package classify

import "testing"

func TestClassifyDomainPriors(t *testing.T) {
	tests := []struct {
		domain string
		title  string
		want   Label
		source Source
	}{
		{"github.com", "", LabelStudy, SourceDomainPrior},
		{"netflix.com", "", LabelDistraction, SourceDomainPrior},
		{"example.com", "", LabelNeutral, SourceDomainPrior},
		{"youtube.com", "", LabelNeutral, SourceDomainPrior},
		{"gist.github.com", "", LabelStudy, SourceDomainPrior},
	}
	for _, tt := range tests {
		v := Classify(tt.domain, tt.title)
		if v.Label != tt.want {
			t.Errorf("Classify(%q, %q) label = %q, want %q", tt.domain, tt.title, v.Label, tt.want)
		}
		if v.Source != tt.source {
			t.Errorf("Classify(%q, %q) source = %q, want %q", tt.domain, tt.title, v.Source, tt.source)
		}
	}
}

func TestTitleOverridesDomainPrior(t *testing.T) {
	v := Classify("youtube.com", "MIT lecture on linear algebra")
	if v.Label != LabelStudy {
		t.Errorf("got %q, want study", v.Label)
	}
	if v.Source != SourceTitleOverride {
		t.Errorf("got source %q, want title_override", v.Source)
	}

	v = Classify("youtube.com", "funny cat compilation")
	if v.Label != LabelDistraction {
		t.Errorf("got %q, want distraction", v.Label)
	}

	// Study keywords flip even a known-distraction domain.
	v = Classify("netflix.com", "documentary on algorithms and data structures")
	if v.Label != LabelStudy || v.Source != SourceTitleOverride {
		t.Errorf("got (%q, %q), want (study, title_override)", v.Label, v.Source)
	}

	// And distraction keywords flip a study domain.
	v = Classify("github.com", "viral meme collection")
	if v.Label != LabelDistraction || v.Source != SourceTitleOverride {
		t.Errorf("got (%q, %q), want (distraction, title_override)", v.Label, v.Source)
	}
}

func TestClassifyKeywordTie(t *testing.T) {
	// One study hit (tutorial) and one distraction hit (gaming).
	v := Classify("example.com", "tutorial gaming")
	if v.Label != LabelNeutral {
		t.Errorf("got %q, want neutral on exact tie", v.Label)
	}
	if v.Confidence != 0.5 {
		t.Errorf("got confidence %v, want 0.5", v.Confidence)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify("reddit.com", "python tutorial")
	for i := 0; i < 10; i++ {
		if got := Classify("reddit.com", "python tutorial"); got != first {
			t.Fatalf("iteration %d: got %+v, want %+v", i, got, first)
		}
	}
	if first.Label != LabelStudy {
		t.Errorf("got %q, want study", first.Label)
	}
}

func TestClassifyAdultIsFinal(t *testing.T) {
	v := Classify("pornhub.com", "educational lecture tutorial")
	if v.Label != LabelDistraction || v.Confidence != 1.0 {
		t.Errorf("got (%q, %v), want (distraction, 1.0)", v.Label, v.Confidence)
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc", "youtube.com"},
		{"http://github.com/user/repo", "github.com"},
		{"", ""},
		{"https://DOCS.Google.com/d/1", "docs.google.com"},
	}
	for _, tt := range tests {
		if got := ExtractDomain(tt.url); got != tt.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
