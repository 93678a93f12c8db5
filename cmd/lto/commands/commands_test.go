package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ltoaccount/internal/event"
)

const testPass = "Cli-Test-Pass-1"

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home, "-p", testPass, "--network", "testnet"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_SignVerify(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Address: 3") {
		t.Fatalf("init output: %q", out)
	}
	if _, err := run(t, home, "init"); err == nil {
		t.Fatal("second init without --force must fail")
	}

	sig, err := run(t, home, "sign", "hello")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig = strings.TrimSpace(sig)

	if out, err := run(t, home, "verify", sig, "hello"); err != nil || strings.TrimSpace(out) != "valid" {
		t.Fatalf("verify: %q %v", out, err)
	}
	if _, err := run(t, home, "verify", sig, "goodbye"); err == nil {
		t.Fatal("verify accepted a signature for another message")
	}
}

func TestCLI_SignEvent(t *testing.T) {
	home := t.TempDir()
	if _, err := run(t, home, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	out, err := run(t, home, "sign-event", "--body", "payload", "--previous", "genesis")
	if err != nil {
		t.Fatalf("sign-event: %v", err)
	}
	var ev event.Event
	if err := json.Unmarshal([]byte(out), &ev); err != nil {
		t.Fatalf("decode event: %v\n%s", err, out)
	}
	if ok, err := ev.Verify(); err != nil || !ok {
		t.Fatalf("printed event does not verify: %v %v", ok, err)
	}
	if ev.Previous != "genesis" {
		t.Fatalf("previous = %q", ev.Previous)
	}
}

func TestCLI_EncryptDecryptSelf(t *testing.T) {
	home := t.TempDir()
	if _, err := run(t, home, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	show, err := run(t, home, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var encKey string
	for _, line := range strings.Split(show, "\n") {
		if rest, ok := strings.CutPrefix(line, "Encryption key:"); ok {
			encKey = strings.TrimSpace(rest)
		}
	}
	if encKey == "" {
		t.Fatalf("no encryption key in show output: %q", show)
	}

	ct, err := run(t, home, "encrypt", "--to-key", encKey, "secret note")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	pt, err := run(t, home, "decrypt", "--from-key", encKey, strings.TrimSpace(ct))
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if strings.TrimSpace(pt) != "secret note" {
		t.Fatalf("decrypt = %q", pt)
	}
}

func TestCLI_RequiresPassphrase(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--home", t.TempDir(), "show"})
	if err := root.Execute(); err == nil {
		t.Fatal("want error without a passphrase")
	}
}

func TestCLI_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "--encoding", "base64", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if encoding != "base64" {
		t.Fatalf("encoding flag not applied: %q", encoding)
	}
	newRootCmd()
	if encoding != "" || network != "" || passphrase != "" || home != "" {
		t.Fatal("flag values carried into a new root command")
	}
	out, err := run(t, dir, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Address:        3") {
		t.Fatalf("show did not fall back to base58: %q", out)
	}
}
