package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/pipeline-crm/internal/platform/logging"
)

func TestNew_LevelsAndFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		format   string
		log      func(*slog.Logger)
		contains []string
		excludes []string
		empty    bool
	}{
		{
			name: "json", level: "info", format: "json",
			log:      func(l *slog.Logger) { l.Info("lead created") },
			contains: []string{`"level":"INFO"`, `"msg":"lead created"`},
			excludes: []string{`"source"`},
		},
		{
			name: "text", level: "info", format: "text",
			log:      func(l *slog.Logger) { l.Info("lead created") },
			contains: []string{"level=INFO", "lead created"},
		},
		{
			name: "unknown format is json", level: "info", format: "xml",
			log:      func(l *slog.Logger) { l.Info("lead created") },
			contains: []string{`"level":"INFO"`},
		},
		{
			name: "debug includes source", level: "debug", format: "json",
			log:      func(l *slog.Logger) { l.Debug("resolving company") },
			contains: []string{`"source"`, "resolving company"},
		},
		{
			name: "level is case insensitive", level: "DEBUG", format: "json",
			log:      func(l *slog.Logger) { l.Debug("resolving company") },
			contains: []string{"resolving company"},
		},
		{
			name: "info filters debug", level: "info", format: "json",
			log:   func(l *slog.Logger) { l.Debug("resolving company") },
			empty: true,
		},
		{
			name: "error filters warn", level: "error", format: "json",
			log:   func(l *slog.Logger) { l.Warn("slow store") },
			empty: true,
		},
		{
			name: "unknown level is info", level: "verbose", format: "json",
			log: func(l *slog.Logger) {
				l.Debug("hidden")
				l.Info("shown")
			},
			contains: []string{"shown"},
			excludes: []string{"hidden"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, tt.format, &buf))
			out := buf.String()

			if tt.empty && out != "" {
				t.Errorf("output = %q, want nothing", out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want it to contain %q", out, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("output = %q, want it not to contain %q", out, bad)
				}
			}
		})
	}
}

func TestContextPropagation(t *testing.T) {
	t.Parallel()

	if logging.FromContext(t.Context()) != slog.Default() {
		t.Error("FromContext on a bare context did not return slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})

	ctx := logging.WithLogger(t.Context(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}
	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext did not return the most recently stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"password", slog.String("password", "hunter2"), "hunter2"},
		{"bearer in free text", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"email field", slog.String("email", "dana@northwind.example"), "dana@northwind.example"},
		{"phone field", slog.String("phone", "+49 30 1234567"), "+49 30 1234567"},
		{"email in summary", slog.String("summary", "replied from dana@northwind.example"), "dana@northwind.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want a [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.String("lead_id", "01HV6Z3K8Q"),
		slog.String("path", "/api/v1/leads"),
	)

	out := buf.String()
	for _, want := range []string{"01HV6Z3K8Q", "/api/v1/leads"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want %q kept", out, want)
		}
	}
}
