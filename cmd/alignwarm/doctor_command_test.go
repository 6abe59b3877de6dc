package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alignwarm/internal/testsupport"
)

func TestDoctorReportsHealthyEnvironment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	uvx := testsupport.WriteExecutable(t, t.TempDir(), "uvx", "echo 'uv 0.8.3'\n")

	env := setupCLITestEnv(t, "uvx_command = \""+uvx+"\"\nhub_base_url = \""+srv.URL+"\"")

	stdout, _, err := env.run(nil, "doctor", "--json")
	if err != nil {
		t.Fatalf("doctor: %v (output %q)", err, stdout)
	}
	var report doctorReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("decode doctor json: %v", err)
	}
	if len(report.Dependencies) != 1 || report.Dependencies[0].Version != "uv 0.8.3" {
		t.Fatalf("unexpected dependencies: %+v", report.Dependencies)
	}
	if report.problems() != 0 {
		t.Fatalf("expected no problems, got %+v", report)
	}
}

func TestDoctorFailsWhenUVXMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	env := setupCLITestEnv(t, "uvx_command = \"clearly-not-present-uvx\"\nhub_base_url = \""+srv.URL+"\"")

	stdout, _, err := env.run(nil, "doctor")
	if err == nil || !strings.Contains(err.Error(), "problem") {
		t.Fatalf("expected doctor to report problems, got %v", err)
	}
	for _, fragment := range []string{"== Dependencies ==", "uvx:", "[ERROR]", "== Environment =="} {
		if !strings.Contains(stdout, fragment) {
			t.Fatalf("expected %q in output %q", fragment, stdout)
		}
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Fatalf("expected no colour codes when not writing to a terminal, got %q", stdout)
	}
}
