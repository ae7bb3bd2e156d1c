package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestClassifyCommandPrintsVerdict(t *testing.T) {
	var out bytes.Buffer
	classifyCmd.SetOut(&out)
	defer classifyCmd.SetOut(nil)
	if err := classifyCmd.Flags().Set("domain", "www.YouTube.com"); err != nil {
		t.Fatal(err)
	}
	if err := classifyCmd.Flags().Set("title", "MIT lecture on linear algebra"); err != nil {
		t.Fatal(err)
	}

	if err := classifyCmd.RunE(classifyCmd, nil); err != nil {
		t.Fatalf("classify: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "domain:     youtube.com") {
		t.Errorf("output missing normalized domain:\n%s", got)
	}
	if !strings.Contains(got, "category:   study") {
		t.Errorf("output missing category:\n%s", got)
	}
	if !strings.Contains(got, "source:     title_override") {
		t.Errorf("output missing source:\n%s", got)
	}
}

func TestClassifyCommandRequiresTarget(t *testing.T) {
	if err := classifyCmd.Flags().Set("domain", ""); err != nil {
		t.Fatal(err)
	}
	if err := classifyCmd.Flags().Set("url", ""); err != nil {
		t.Fatal(err)
	}
	if err := classifyCmd.RunE(classifyCmd, nil); err == nil {
		t.Fatal("expected an error without --url or --domain")
	}
}
