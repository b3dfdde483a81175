package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

// captureStdout captures os.Stdout while fn runs
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = old
	return <-outC
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	output := captureStdout(t, func() {
		if err := f.Success(mockDataWithID{ID: 123, Name: "Test"}); err != nil {
			t.Errorf("Success() error = %v", err)
		}
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["Name"] != "Test" {
		t.Errorf("Expected data.Name to be 'Test', got %v", data["Name"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"with ID", mockDataWithID{ID: 7}, "7\n"},
		{"without ID falls back to plain output", "plain", "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{Quiet: true}
			output := captureStdout(t, func() {
				_ = f.Success(tt.data)
			})
			if output != tt.want {
				t.Errorf("Success() output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	output := captureStdout(t, func() {
		_ = f.ErrorWithSuggestion("DETAIL_NOT_FOUND", "detail 9 not found", "run caolan detail list")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "DETAIL_NOT_FOUND" {
		t.Errorf("code = %v, want DETAIL_NOT_FOUND", errData["code"])
	}
	if !strings.Contains(errData["suggestion"].(string), "detail list") {
		t.Errorf("suggestion = %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	f := &OutputFormatter{}

	output := captureStdout(t, func() {
		_ = f.Error("DETAIL_NOT_FOUND", "detail 9 not found")
	})
	if output != "" {
		t.Errorf("human errors should not be written to stdout, got %q", output)
	}
}
