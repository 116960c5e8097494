package demo

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/logger"
	"github.com/zhubert/chatshell/internal/transcript"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}
	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}
	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}
	if cfg.SettleTimeout <= 0 {
		t.Errorf("SettleTimeout = %v, want positive", cfg.SettleTimeout)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := &Scenario{
		Name:   "test",
		Width:  120,
		Height: 24,
		Steps: []Step{
			Wait(100 * time.Millisecond),
			Key("ctrl+b"),
			Wait(100 * time.Millisecond),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	executor := NewExecutor(cfg)
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// initial + wait + key + wait
	if len(frames) != 4 {
		t.Errorf("Expected 4 frames, got %d", len(frames))
	}
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}
	if executor.Model().SidebarOpen() {
		t.Error("ctrl+b should have closed the sidebar")
	}
	if !executor.Model().Closed() {
		t.Error("Run should close the shell when it returns")
	}
}

func TestExecutorRun_TypeSendAndReply(t *testing.T) {
	scenario := &Scenario{
		Name:   "chat",
		Width:  120,
		Height: 24,
		Setup:  &ScenarioSetup{Mode: layout.TwoPane},
		Steps: []Step{
			Type("hello"),
			Key("enter"),
			Reply("hi there"),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	conv, ok := executor.Model().ActiveConversation()
	if !ok {
		t.Fatal("sending should create a conversation")
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("messages = %+v", conv.Messages)
	}
	if conv.Messages[0].Role != transcript.RoleUser || conv.Messages[0].Content != "hello" {
		t.Errorf("first message = %+v", conv.Messages[0])
	}
	if conv.Messages[1].Role != transcript.RoleAssistant {
		t.Errorf("second message = %+v", conv.Messages[1])
	}

	last := ansi.Strip(frames[len(frames)-1].Content)
	if !strings.Contains(last, "hi there") {
		t.Errorf("reply not rendered:\n%s", last)
	}
}

func TestExecutorRun_ReplyWithoutConversation(t *testing.T) {
	scenario := &Scenario{
		Name:  "reply",
		Setup: &ScenarioSetup{},
		Steps: []Step{Reply("nobody asked")},
	}
	if _, err := NewExecutor(DefaultExecutorConfig()).Run(scenario); err == nil {
		t.Error("reply with no active conversation should fail")
	}
}

func TestExecutorRun_ResizeTracksFrameSize(t *testing.T) {
	scenario := &Scenario{
		Name:   "resize",
		Width:  120,
		Height: 30,
		Steps: []Step{
			Resize(70, 20),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(frames))
	}
	if frames[1].Width != 70 || frames[1].Height != 20 {
		t.Errorf("resized frame = %dx%d", frames[1].Width, frames[1].Height)
	}
	if !executor.Model().OverlayShown() {
		t.Error("an open sidebar should become an overlay below the breakpoint")
	}
}

func TestExecutorRun_Annotation(t *testing.T) {
	scenario := &Scenario{
		Name: "annotate",
		Steps: []Step{
			Annotate("hello"),
			Capture(),
			Capture(),
		},
	}
	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if frames[1].Annotation != "hello" {
		t.Errorf("annotation = %q, want hello", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Errorf("annotation should apply to one frame, got %q", frames[2].Annotation)
	}
}

func TestExecutorRun_StopsAfterQuit(t *testing.T) {
	scenario := &Scenario{
		Name:  "quit",
		Steps: []Step{Key("ctrl+c"), Capture()},
	}
	if _, err := NewExecutor(DefaultExecutorConfig()).Run(scenario); err == nil {
		t.Error("steps after ctrl+c should fail")
	}
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  bool
	}{
		{"missing name", Scenario{}, true},
		{"defaults", Scenario{Name: "ok"}, false},
		{"empty key", Scenario{Name: "k", Steps: []Step{{Type: StepKey}}}, true},
		{"bad resize", Scenario{Name: "r", Steps: []Step{Resize(0, 10)}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	s := Scenario{Name: "defaults"}
	_ = s.Validate()
	if s.Width != 120 || s.Height != 40 || s.Setup == nil {
		t.Errorf("defaults not applied: %+v", s)
	}
}

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond, Width: 80, Height: 24},
		{Content: "three", Delay: 250 * time.Millisecond, Width: 60, Height: 20, Annotation: "narrow"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24); err != nil {
		t.Fatalf("GenerateASCIICast: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header, frame, resize, frame, marker
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 {
		t.Errorf("header = %+v", header)
	}

	var event []any
	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatalf("event: %v", err)
	}
	if event[0].(float64) != 0.5 || event[1] != "o" {
		t.Errorf("first event = %v", event)
	}
	if data := event[2].(string); !strings.Contains(data, "one\r\ntwo") {
		t.Errorf("frame data = %q", data)
	}

	if err := json.Unmarshal([]byte(lines[2]), &event); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if event[1] != "r" || event[2] != "60x20" {
		t.Errorf("resize event = %v", event)
	}

	if err := json.Unmarshal([]byte(lines[4]), &event); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if event[1] != "m" || event[2] != "narrow" {
		t.Errorf("marker event = %v", event)
	}
}

func TestWriteFrames(t *testing.T) {
	frames := []Frame{{Content: "\x1b[1mbold\x1b[0m", Annotation: "note"}}

	var buf bytes.Buffer
	if err := WriteFrames(&buf, frames, true); err != nil {
		t.Fatalf("WriteFrames: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Captured 1 frames", "Annotation: note", "bold"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("stripANSI should remove escape sequences")
	}
}
