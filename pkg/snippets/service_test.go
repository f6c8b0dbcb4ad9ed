package snippets

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	clierrors "clipstash/pkg/errors"
	"clipstash/pkg/store"
)

// fakeClipboard is an in-memory stand-in for the OS clipboard.
type fakeClipboard struct {
	contents string
	readErr  error
	writeErr error
}

func (f *fakeClipboard) Read() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.contents, nil
}

func (f *fakeClipboard) Write(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.contents = text
	return nil
}

type recordedEvent struct {
	op   string
	key  string
	size int
}

type fakeRecorder struct {
	events []recordedEvent
}

func (f *fakeRecorder) Record(op, key string, size int) error {
	f.events = append(f.events, recordedEvent{op, key, size})
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeClipboard) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "clipboard.json"))
	clip := &fakeClipboard{}
	return NewService(st, clip), clip
}

func alwaysYes(string) (bool, error) { return true, nil }
func alwaysNo(string) (bool, error)  { return false, nil }

func TestSave_StoresClipboardContents(t *testing.T) {
	svc, clip := newTestService(t)
	clip.contents = "hello from clipboard"

	if err := svc.Save("greeting", alwaysYes); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, ok := svc.Store().Get("greeting")
	if !ok {
		t.Fatal("key not stored")
	}
	if got != "hello from clipboard" {
		t.Errorf("stored %q, want %q", got, "hello from clipboard")
	}

	// The mutation must have been persisted.
	loaded, err := store.Load(svc.Store().Path())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if v, _ := loaded.Get("greeting"); v != "hello from clipboard" {
		t.Errorf("persisted %q, want %q", v, "hello from clipboard")
	}
}

func TestSave_EmptyKey(t *testing.T) {
	svc, clip := newTestService(t)
	clip.contents = "content"

	err := svc.Save("", alwaysYes)
	if err == nil {
		t.Fatal("Save() expected error for empty key")
	}
	if !clierrors.IsExitCode(err, clierrors.ExitCodeValidation) {
		t.Errorf("unexpected error code: %v", err)
	}
	if svc.Store().Len() != 0 {
		t.Error("store changed by rejected save")
	}
}

func TestSave_DeclinedOverwriteKeepsValue(t *testing.T) {
	svc, clip := newTestService(t)
	clip.contents = "original"
	if err := svc.Save("key", nil); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	clip.contents = "replacement"
	err := svc.Save("key", alwaysNo)
	if err == nil {
		t.Fatal("Save() expected cancellation error")
	}
	if !clierrors.IsExitCode(err, clierrors.ExitCodeCancellation) {
		t.Errorf("unexpected error code: %v", err)
	}

	if v, _ := svc.Store().Get("key"); v != "original" {
		t.Errorf("value changed after declined overwrite: %q", v)
	}
}

func TestSave_ConfirmedOverwriteReplacesValue(t *testing.T) {
	svc, clip := newTestService(t)
	clip.contents = "original"
	if err := svc.Save("key", nil); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	clip.contents = "replacement"
	if err := svc.Save("key", alwaysYes); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if v, _ := svc.Store().Get("key"); v != "replacement" {
		t.Errorf("value = %q, want %q", v, "replacement")
	}
}

func TestSave_ClipboardReadError(t *testing.T) {
	svc, clip := newTestService(t)
	clip.readErr = errors.New("no clipboard backend")

	err := svc.Save("key", nil)
	if err == nil {
		t.Fatal("Save() expected clipboard error")
	}
	if svc.Store().Len() != 0 {
		t.Error("store changed despite clipboard failure")
	}
}

func TestLoad_CopiesValueToClipboard(t *testing.T) {
	svc, clip := newTestService(t)
	if err := svc.Store().Set("snippet", "stored text"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if err := svc.Load("snippet"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if clip.contents != "stored text" {
		t.Errorf("clipboard = %q, want %q", clip.contents, "stored text")
	}
}

func TestLoad_MissingKey(t *testing.T) {
	svc, clip := newTestService(t)
	clip.contents = "untouched"

	err := svc.Load("absent")
	if err == nil {
		t.Fatal("Load() expected error for missing key")
	}
	if !clierrors.IsExitCode(err, clierrors.ExitCodeNotFound) {
		t.Errorf("unexpected error code: %v", err)
	}
	if clip.contents != "untouched" {
		t.Error("clipboard changed by failed load")
	}
}

func TestLoad_EmptyKey(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Load("")
	if err == nil {
		t.Fatal("Load() expected error for empty key")
	}
	if !clierrors.IsExitCode(err, clierrors.ExitCodeValidation) {
		t.Errorf("unexpected error code: %v", err)
	}
}

func TestDelete_RemovesAndPersists(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Store().Set("key", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := svc.Store().Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := svc.Delete("key"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	loaded, err := store.Load(svc.Store().Path())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Has("key") {
		t.Error("key still persisted after delete")
	}
}

func TestDelete_AbsentKeyLeavesStoreUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Store().Set("keep", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	err := svc.Delete("absent")
	if err == nil {
		t.Fatal("Delete() expected error for absent key")
	}
	if !clierrors.IsExitCode(err, clierrors.ExitCodeNotFound) {
		t.Errorf("unexpected error code: %v", err)
	}
	if svc.Store().Len() != 1 {
		t.Errorf("store changed by failed delete, %d keys", svc.Store().Len())
	}
}

func TestDelete_EmptyKey(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete("")
	if err == nil {
		t.Fatal("Delete() expected error for empty key")
	}
	if !clierrors.IsExitCode(err, clierrors.ExitCodeValidation) {
		t.Errorf("unexpected error code: %v", err)
	}
}

func TestList_OneLinePerKey(t *testing.T) {
	svc, _ := newTestService(t)
	entries := map[string]string{
		"alpha": "first",
		"beta":  "second",
		"gamma": "third",
	}
	for k, v := range entries {
		if err := svc.Store().Set(k, v); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	var buf bytes.Buffer
	if err := svc.List(&buf); err != nil {
		t.Fatalf("List() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(entries) {
		t.Fatalf("expected %d lines, got %d: %q", len(entries), len(lines), buf.String())
	}
	// Keys come out sorted.
	wantOrder := []string{"alpha", "beta", "gamma"}
	for i, line := range lines {
		if !strings.HasPrefix(line, wantOrder[i]+"\t") {
			t.Errorf("line %d = %q, want prefix %q", i, line, wantOrder[i])
		}
		if !strings.HasSuffix(line, entries[wantOrder[i]]) {
			t.Errorf("line %d = %q, want value %q", i, line, entries[wantOrder[i]])
		}
	}
}

func TestList_EmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	var buf bytes.Buffer
	if err := svc.List(&buf); err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty store, got %q", buf.String())
	}
}

func TestService_RecordsHistory(t *testing.T) {
	svc, clip := newTestService(t)
	rec := &fakeRecorder{}
	svc.WithRecorder(rec)

	clip.contents = "abcd"
	if err := svc.Save("key", nil); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := svc.Load("key"); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := svc.Delete("key"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	want := []recordedEvent{
		{"save", "key", 4},
		{"load", "key", 4},
		{"delete", "key", 0},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(rec.events))
	}
	for i, e := range want {
		if rec.events[i] != e {
			t.Errorf("event %d = %+v, want %+v", i, rec.events[i], e)
		}
	}
}

func TestService_NoHistoryForFailedOperations(t *testing.T) {
	svc, _ := newTestService(t)
	rec := &fakeRecorder{}
	svc.WithRecorder(rec)

	_ = svc.Load("absent")
	_ = svc.Delete("absent")
	_ = svc.Save("", nil)

	if len(rec.events) != 0 {
		t.Errorf("expected no events for failed operations, got %d", len(rec.events))
	}
}
