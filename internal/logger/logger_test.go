package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lcms/internal/config"

	"github.com/spf13/cobra"
)

// ==================== Logger Tests ====================

func TestNew_Defaults(t *testing.T) {
	cfg := config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_JSONFormat(t *testing.T) {
	cfg := config.LogConfig{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_PrettyFormat(t *testing.T) {
	cfg := config.LogConfig{
		Level:  "debug",
		Format: "pretty",
		Output: "stdout",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.LogConfig{
		Level:  "invalid",
		Format: "text",
		Output: "stderr",
	}

	_, err := New(cfg)
	if err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestNew_FileOutput(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	cfg := config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: logPath,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Log something
	logger.Info("test message")

	// Close to flush
	logger.Close()

	// Verify file was created
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestNew_MultipleOutputs(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "extra.log")

	cfg := config.LogConfig{
		Level:    "info",
		Format:   "text",
		Output:   "stderr",
		FilePath: filePath,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("test message")
	logger.Close()

	// Verify file was created
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		t.Error("additional log file was not created")
	}
}

func TestNew_WithCaller(t *testing.T) {
	cfg := config.LogConfig{
		Level:        "info",
		Format:       "text",
		Output:       "stderr",
		EnableCaller: true,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestLogger_With(t *testing.T) {
	cfg := config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	childLogger := logger.With("key", "value")
	if childLogger == nil {
		t.Fatal("expected non-nil child logger")
	}
}

func TestLogger_WithGroup(t *testing.T) {
	cfg := config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	groupLogger := logger.WithGroup("mygroup")
	if groupLogger == nil {
		t.Fatal("expected non-nil group logger")
	}
}

func TestLogger_Close(t *testing.T) {
	cfg := config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = logger.Close()
	if err != nil {
		t.Errorf("unexpected error closing logger: %v", err)
	}
}

func TestLogger_CloseNil(t *testing.T) {
	logger := &Logger{}
	err := logger.Close()
	if err != nil {
		t.Errorf("unexpected error closing nil logger: %v", err)
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("expected non-nil default logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		hasError bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false}, // empty defaults to info
		{"warn", slog.LevelWarn, false},
		{"WARN", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"ERROR", slog.LevelError, false},
		{"invalid", slog.LevelInfo, true},
		{"trace", slog.LevelInfo, true}, // not supported
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLevel(tt.input)
			if tt.hasError && err == nil {
				t.Error("expected error")
			}
			if !tt.hasError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.hasError && level != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, level)
			}
		})
	}
}

// ==================== Context Tests ====================

func TestNewCommandContext(t *testing.T) {
	cmd := &cobra.Command{
		Use: "test",
	}
	args := []string{"arg1", "arg2"}

	cc := NewCommandContext(cmd, args)

	if cc == nil {
		t.Fatal("expected non-nil CommandContext")
	}
	if cc.Command != "test" {
		t.Errorf("expected command 'test', got %q", cc.Command)
	}
	if len(cc.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(cc.Args))
	}
	if cc.RequestID == "" {
		t.Error("expected non-empty request ID")
	}
	if cc.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestWithCommandContext(t *testing.T) {
	cc := &CommandContext{
		Command:   "test",
		RequestID: "req-123",
	}

	ctx := context.Background()
	ctx = WithCommandContext(ctx, cc)

	retrieved := CommandContextFrom(ctx)
	if retrieved == nil {
		t.Fatal("expected non-nil CommandContext")
	}
	if retrieved.Command != "test" {
		t.Errorf("expected command 'test', got %q", retrieved.Command)
	}
	if retrieved.RequestID != "req-123" {
		t.Errorf("expected request ID 'req-123', got %q", retrieved.RequestID)
	}
}

func TestCommandContextFrom_NotSet(t *testing.T) {
	ctx := context.Background()
	cc := CommandContextFrom(ctx)
	if cc != nil {
		t.Error("expected nil CommandContext")
	}
}

func TestWithLogger(t *testing.T) {
	logger := Default()
	ctx := context.Background()
	ctx = WithLogger(ctx, logger)

	retrieved := LoggerFrom(ctx)
	if retrieved == nil {
		t.Fatal("expected non-nil Logger")
	}
}

func TestLoggerFrom_NotSet(t *testing.T) {
	ctx := context.Background()
	logger := LoggerFrom(ctx)
	if logger == nil {
		t.Fatal("expected default logger when not set")
	}
}

func TestCommandContext_LogAttrs(t *testing.T) {
	cc := &CommandContext{
		Command:    "test",
		Args:       []string{"arg1"},
		User:       "testuser",
		Hostname:   "testhost",
		WorkingDir: "/tmp",
		Timestamp:  time.Now(),
		RequestID:  "req-123",
	}

	attrs := cc.LogAttrs()
	if len(attrs) == 0 {
		t.Error("expected non-empty attrs")
	}

	// Check that we have the expected attributes
	hasRequestID := false
	hasCommand := false
	for _, attr := range attrs {
		if attr.Key == "request_id" {
			hasRequestID = true
		}
		if attr.Key == "command" {
			hasCommand = true
		}
	}
	if !hasRequestID {
		t.Error("expected request_id attribute")
	}
	if !hasCommand {
		t.Error("expected command attribute")
	}
}

func TestCommandContext_LogAttrs_Nil(t *testing.T) {
	var cc *CommandContext
	attrs := cc.LogAttrs()
	if attrs != nil {
		t.Error("expected nil attrs for nil CommandContext")
	}
}

func TestCommandContext_LogGroup(t *testing.T) {
	cc := &CommandContext{
		Command:   "test",
		RequestID: "req-123",
	}

	group := cc.LogGroup()
	if group.Key != "context" {
		t.Errorf("expected group key 'context', got %q", group.Key)
	}
}

func TestCommandContext_LogGroup_Nil(t *testing.T) {
	var cc *CommandContext
	group := cc.LogGroup()
	if group.Key != "" {
		t.Error("expected empty group for nil CommandContext")
	}
}

func TestGenerateRequestID(t *testing.T) {
	id1 := generateRequestID()
	id2 := generateRequestID()

	if id1 == "" {
		t.Error("expected non-empty request ID")
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
}

// ==================== Error Tests ====================

func TestWrapError(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := WrapError(originalErr, "wrapped message")

	if wrappedErr == nil {
		t.Fatal("expected non-nil error")
	}

	if !strings.Contains(wrappedErr.Error(), "wrapped message") {
		t.Error("expected wrapped message in error")
	}
	if !strings.Contains(wrappedErr.Error(), "original error") {
		t.Error("expected original error in error")
	}
}

func TestWrapError_Nil(t *testing.T) {
	err := WrapError(nil, "message")
	if err != nil {
		t.Error("expected nil when wrapping nil error")
	}
}

func TestWrappedError_Error(t *testing.T) {
	originalErr := errors.New("original")
	wrapped := &WrappedError{
		msg:   "wrapped",
		cause: originalErr,
	}

	if wrapped.Error() != "wrapped: original" {
		t.Errorf("unexpected error string: %q", wrapped.Error())
	}
}

func TestWrappedError_ErrorNoCause(t *testing.T) {
	wrapped := &WrappedError{
		msg: "wrapped",
	}

	if wrapped.Error() != "wrapped" {
		t.Errorf("unexpected error string: %q", wrapped.Error())
	}
}

func TestWrappedError_Unwrap(t *testing.T) {
	originalErr := errors.New("original")
	wrapped := &WrappedError{
		msg:   "wrapped",
		cause: originalErr,
	}

	unwrapped := wrapped.Unwrap()
	if unwrapped != originalErr {
		t.Error("expected original error from Unwrap")
	}
}

func TestWrappedError_Caller(t *testing.T) {
	wrapped := &WrappedError{
		caller: "test.go:10",
	}

	if wrapped.Caller() != "test.go:10" {
		t.Errorf("unexpected caller: %q", wrapped.Caller())
	}
}

func TestWithError(t *testing.T) {
	err := errors.New("test error")
	attr := WithError(err)

	if attr.Key != "error" {
		t.Errorf("expected key 'error', got %q", attr.Key)
	}
}

func TestWithError_Nil(t *testing.T) {
	attr := WithError(nil)
	if attr.Key != "" {
		t.Error("expected empty attr for nil error")
	}
}

func TestWithError_WrappedError(t *testing.T) {
	originalErr := errors.New("original")
	wrapped := WrapError(originalErr, "wrapped")
	attr := WithError(wrapped)

	if attr.Key != "error" {
		t.Errorf("expected key 'error', got %q", attr.Key)
	}
}

// ==================== Console Handler Tests ====================

func TestNewCharmHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewCharmHandler(buf, nil)
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}
}

func TestNewCharmHandler_WithOptions(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &CharmHandlerOptions{
		Level:      slog.LevelDebug,
		NoColor:    true,
		TimeFormat: "15:04:05",
		ShowCaller: true,
		Prefix:     "test",
	}

	handler := NewCharmHandler(buf, opts)
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}
}

func TestCharmHandler_Enabled(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &CharmHandlerOptions{
		Level: slog.LevelInfo,
	}
	handler := NewCharmHandler(buf, opts)

	if !handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info level to be enabled")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error level to be enabled")
	}
	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be disabled")
	}
}

func TestCharmHandler_Handle(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewCharmHandler(buf, nil)

	ctx := context.Background()
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	record.AddAttrs(slog.String("key", "value"))

	err := handler.Handle(ctx, record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Error("expected message in output")
	}
}

func TestCharmHandler_Handle_NoColor(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewCharmHandler(buf, &CharmHandlerOptions{NoColor: true})

	ctx := context.Background()
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "plain message", 0)

	err := handler.Handle(ctx, record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "plain message") {
		t.Error("expected message in output")
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("expected no ANSI escapes in no-color output")
	}
}

func TestCharmHandler_HandleLevels(t *testing.T) {
	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := NewCharmHandler(buf, &CharmHandlerOptions{Level: slog.LevelDebug})

			ctx := context.Background()
			record := slog.NewRecord(time.Now(), level, "test", 0)

			err := handler.Handle(ctx, record)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCharmHandler_WithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewCharmHandler(buf, nil)

	newHandler := handler.WithAttrs([]slog.Attr{slog.String("key", "value")})
	if newHandler == nil {
		t.Fatal("expected non-nil handler")
	}
}

func TestCharmHandler_WithGroup(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewCharmHandler(buf, nil)

	newHandler := handler.WithGroup("test")
	if newHandler == nil {
		t.Fatal("expected non-nil handler")
	}
}

func TestCharmHandler_WithGroup_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewCharmHandler(buf, nil)

	newHandler := handler.WithGroup("")
	if newHandler != handler {
		t.Error("expected same handler for empty group name")
	}
}

func TestCharmLogLevel(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		expected  string
	}{
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			level := charmLogLevel(tt.slogLevel)
			_ = level // Just verify no panic
		})
	}
}

func TestFormatSlogValue(t *testing.T) {
	tests := []struct {
		name  string
		value slog.Value
	}{
		{"time", slog.TimeValue(time.Now())},
		{"duration", slog.DurationValue(time.Second)},
		{"string", slog.StringValue("test")},
		{"int", slog.Int64Value(42)},
		{"any", slog.AnyValue(struct{ Name string }{"test"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSlogValue(tt.value)
			if result == nil {
				t.Error("expected non-nil result")
			}
		})
	}
}

// ==================== Audit Logger Tests ====================

func TestNewAuditLogger_EmptyPath(t *testing.T) {
	_, err := NewAuditLogger("", 365)
	if err == nil {
		t.Error("expected error for empty audit path")
	}
}

func TestNewAuditLogger_DefaultMaxAge(t *testing.T) {
	tempDir := t.TempDir()
	auditPath := filepath.Join(tempDir, "audit.log")

	logger, err := NewAuditLogger(auditPath, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewAuditLogger_CreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	auditPath := filepath.Join(tempDir, "nested", "dir", "audit.log")

	logger, err := NewAuditLogger(auditPath, 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Dir(auditPath)); os.IsNotExist(err) {
		t.Error("audit log directory was not created")
	}
}

func TestAuditLogger_Log(t *testing.T) {
	tempDir := t.TempDir()
	auditPath := filepath.Join(tempDir, "audit.log")

	logger, err := NewAuditLogger(auditPath, 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	event := AuditEvent{
		Action:   AuditActionCreate,
		Actor:    "testuser",
		Resource: "Fiction/Sci-Fi",
		Outcome:  AuditOutcomeSuccess,
		Metadata: map[string]any{"books": 3},
	}

	ctx := context.Background()
	logger.Log(ctx, event)

	// Close to flush
	logger.Close()

	// Read and verify log
	data, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}

	if !strings.Contains(string(data), "testuser") {
		t.Error("expected actor in audit log")
	}
	if !strings.Contains(string(data), "create") {
		t.Error("expected action in audit log")
	}
	if !strings.Contains(string(data), "Fiction/Sci-Fi") {
		t.Error("expected resource in audit log")
	}
}

func TestAuditLogger_Log_WithContext(t *testing.T) {
	tempDir := t.TempDir()
	auditPath := filepath.Join(tempDir, "audit.log")

	logger, err := NewAuditLogger(auditPath, 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	cc := &CommandContext{
		User:      "ctxuser",
		RequestID: "req-456",
	}
	ctx := WithCommandContext(context.Background(), cc)

	logger.Log(ctx, AuditEvent{
		Action:   AuditActionDelete,
		Actor:    "ctxuser",
		Resource: "Dune",
		Outcome:  AuditOutcomeSuccess,
	})

	logger.Close()

	data, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}

	if !strings.Contains(string(data), "req-456") {
		t.Error("expected request ID from context in audit log")
	}
}

func TestAuditLogger_LogCommand(t *testing.T) {
	tempDir := t.TempDir()
	auditPath := filepath.Join(tempDir, "audit.log")

	logger, err := NewAuditLogger(auditPath, 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	cc := &CommandContext{User: "cmduser", RequestID: "req-789"}
	ctx := WithCommandContext(context.Background(), cc)

	logger.LogCommand(ctx, "lcms book add", AuditOutcomeSuccess, map[string]any{"title": "Dune"})
	logger.Close()

	data, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}

	if !strings.Contains(string(data), "lcms book add") {
		t.Error("expected command in audit log")
	}
	if !strings.Contains(string(data), "cmduser") {
		t.Error("expected actor from context in audit log")
	}
}

func TestAuditLogger_LogMutation(t *testing.T) {
	tempDir := t.TempDir()
	auditPath := filepath.Join(tempDir, "audit.log")

	logger, err := NewAuditLogger(auditPath, 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Close()

	ctx := context.Background()
	logger.LogMutation(ctx, AuditActionImport, "library.csv", AuditOutcomeSuccess, map[string]any{
		"imported": 10,
		"skipped":  2,
	})
	logger.Close()

	data, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}

	if !strings.Contains(string(data), "import") {
		t.Error("expected action in audit log")
	}
	if !strings.Contains(string(data), "library.csv") {
		t.Error("expected resource in audit log")
	}
	if !strings.Contains(string(data), "unknown") {
		t.Error("expected fallback actor in audit log")
	}
}

func TestAuditLogger_NilSafe(t *testing.T) {
	logger := NopAuditLogger()

	ctx := context.Background()
	// None of these should panic on the nil logger
	logger.Log(ctx, AuditEvent{Action: AuditActionCreate})
	logger.LogCommand(ctx, "test", AuditOutcomeSuccess, nil)
	logger.LogMutation(ctx, AuditActionDelete, "x", AuditOutcomeFailure, nil)

	if err := logger.Close(); err != nil {
		t.Errorf("unexpected error closing nil audit logger: %v", err)
	}
}
