package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_ParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "text", &buf)
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.GetLevel())
	}
}

func TestNew_InvalidLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New("chatty", "text", &buf)
	if logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("level = %v, want warn", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "invalid log level") {
		t.Errorf("expected a warning about the level, got %q", buf.String())
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)
	logger.WithField(FieldKey, "sb_income").Info("saved")

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"key":"sb_income"`) {
		t.Errorf("missing key field in %q", out)
	}
}
