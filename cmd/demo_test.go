package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestDemoList(t *testing.T) {
	var out bytes.Buffer
	demoListCmd.SetOut(&out)
	defer demoListCmd.SetOut(nil)

	demoListCmd.Run(demoListCmd, nil)

	for _, want := range []string{"overview", "compose"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list missing %q:\n%s", want, out.String())
		}
	}
}

func TestGetScenario_OverridesDoNotLeak(t *testing.T) {
	demoWidth, demoHeight = 70, 20
	defer func() { demoWidth, demoHeight = 0, 0 }()

	s, err := getScenario("overview")
	if err != nil {
		t.Fatalf("getScenario: %v", err)
	}
	if s.Width != 70 || s.Height != 20 {
		t.Errorf("size = %dx%d, want 70x20", s.Width, s.Height)
	}

	demoWidth, demoHeight = 0, 0
	again, _ := getScenario("overview")
	if again.Width == 70 {
		t.Error("width override leaked into the shared scenario")
	}
}

func TestGetScenario_Unknown(t *testing.T) {
	if _, err := getScenario("nope"); err == nil {
		t.Error("unknown scenario should fail")
	}
}
