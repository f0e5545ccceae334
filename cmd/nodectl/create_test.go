package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errBuf.String(), err
}

func TestCreateBulkEchoesServerBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]interface{}
		json.NewDecoder(r.Body).Decode(&doc)
		doc["id"] = "generated"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	stdout, _, err := runCommand(t,
		"create", "ComputeNode",
		"--url", server.URL,
		"--data", `[{"hostname":"a"},{"hostname":"b"}]`,
	)
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 output lines, got %d: %q", len(lines), stdout)
	}
	for _, line := range lines {
		if !strings.Contains(line, `"id":"generated"`) {
			t.Errorf("Expected echoed server body, got %q", line)
		}
	}
}

func TestCreateReportsFailingItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]interface{}
		json.NewDecoder(r.Body).Decode(&doc)
		if doc["hostname"] == "dup" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"duplicate"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	_, stderr, err := runCommand(t,
		"create", "ComputeNode",
		"--url", server.URL,
		"--data", `[{"hostname":"a"},{"hostname":"dup"}]`,
	)
	// Item failures are reported, not propagated, unless --strict is set.
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	if !strings.Contains(stderr, `Error creating object: {"hostname":"dup"}`) {
		t.Errorf("Expected failing document in diagnostics, got %q", stderr)
	}
	if !strings.Contains(stderr, "duplicate") {
		t.Errorf("Expected rejection body in diagnostics, got %q", stderr)
	}
	if !strings.Contains(stderr, "1 created, 1 rejected, 0 failed") {
		t.Errorf("Expected summary line, got %q", stderr)
	}
}

func TestCreateStrictPropagatesFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"nope"}`))
	}))
	defer server.Close()

	_, _, err := runCommand(t,
		"create", "ComputeNode",
		"--url", server.URL,
		"--strict",
		"--data", `{"hostname":"a"}`,
	)
	if err == nil {
		t.Error("Expected non-nil error with --strict and a rejected item")
	}
}

func TestCreateFromFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "nodes.json")
	if err := os.WriteFile(path, []byte(`[{"hostname":"a"}]`), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	stdout, _, err := runCommand(t,
		"create", "ComputeNode",
		"--url", server.URL,
		"--file", path,
	)
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	if !strings.Contains(stdout, `"ok":true`) {
		t.Errorf("Expected echoed body, got %q", stdout)
	}
}

func TestCreateInputFaults(t *testing.T) {
	t.Setenv("NODECTL_URL", "")

	// No input source at all.
	if _, _, err := runCommand(t, "create", "ComputeNode", "--url", "http://localhost:9"); err == nil {
		t.Error("Expected error when no data is provided")
	}

	// Two input sources at once.
	if _, _, err := runCommand(t,
		"create", "ComputeNode",
		"--url", "http://localhost:9",
		"--data", `{"hostname":"a"}`,
		"--csv", "x.csv",
	); err == nil {
		t.Error("Expected error when multiple inputs are provided")
	}

	// Unparsable batch input aborts before any dispatch.
	if _, _, err := runCommand(t,
		"create", "ComputeNode",
		"--url", "http://localhost:9",
		"--data", `"just a string"`,
	); err == nil {
		t.Error("Expected configuration fault for non-object input")
	}

	// Missing base URL.
	if _, _, err := runCommand(t, "create", "ComputeNode", "--data", `{"hostname":"a"}`); err == nil {
		t.Error("Expected error for missing base URL")
	}
}

func TestDeleteCommand(t *testing.T) {
	var gotMethod, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	stdout, _, err := runCommand(t, "delete", "ComputeNode", "abc", "--url", server.URL)
	if err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/ComputeNode/abc" {
		t.Errorf("Expected DELETE /ComputeNode/abc, got %s %s", gotMethod, gotPath)
	}
	if !strings.Contains(stdout, "Deleted ComputeNode with ID abc") {
		t.Errorf("Expected deletion confirmation, got %q", stdout)
	}
}

func TestUpdateCommandValidatesFirst(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	schemaContent := `{"type":"object","required":["xname"]}`
	if err := os.WriteFile(filepath.Join(dir, "ComputeNode.json"), []byte(schemaContent), 0644); err != nil {
		t.Fatalf("Failed to write schema: %v", err)
	}

	_, _, err := runCommand(t,
		"update", "ComputeNode", "abc",
		"--url", server.URL,
		"--schema-dir", dir,
		"--data", `{"hostname":"a"}`,
	)
	if err == nil {
		t.Error("Expected validation error for document without xname")
	}
	if requests != 0 {
		t.Errorf("Expected no request after validation failure, got %d", requests)
	}
}

func TestTokenCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "token", "--secret", "s3cret", "--subject", "alice")
	if err != nil {
		t.Fatalf("token error = %v", err)
	}
	// A JWT is three dot-separated base64 segments.
	if parts := strings.Split(strings.TrimSpace(stdout), "."); len(parts) != 3 {
		t.Errorf("Expected a JWT, got %q", stdout)
	}
}
