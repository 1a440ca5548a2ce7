package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSubtitleFiles_ExcludesOutputDir(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "Subtitles")

	touch(t, filepath.Join(out, "old.srt"))
	touch(t, filepath.Join(root, "01 - Intro", "1. Welcome.vtt"))
	touch(t, filepath.Join(root, "01 - Intro", "notes.txt"))

	got, err := SubtitleFiles(root, out, nil, nil)
	if err != nil {
		t.Fatalf("SubtitleFiles() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	wantRel := filepath.Join("01 - Intro", "1. Welcome.vtt")
	if got[0].RelPath != wantRel {
		t.Errorf("RelPath = %q, want %q", got[0].RelPath, wantRel)
	}
	if got[0].Stem != "1. Welcome" {
		t.Errorf("Stem = %q, want %q", got[0].Stem, "1. Welcome")
	}
	if got[0].Ext != ".vtt" {
		t.Errorf("Ext = %q, want .vtt", got[0].Ext)
	}
}

func TestSubtitleFiles_ExtCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "A.SRT"))
	touch(t, filepath.Join(root, "b.Vtt"))
	touch(t, filepath.Join(root, "c.ass"))

	got, err := SubtitleFiles(root, "", nil, nil)
	if err != nil {
		t.Fatalf("SubtitleFiles() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestSubtitleFiles_WalkOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b", "2.srt"))
	touch(t, filepath.Join(root, "a", "1.srt"))
	touch(t, filepath.Join(root, "a", "0.srt"))

	got, err := SubtitleFiles(root, "", []string{"srt"}, nil)
	if err != nil {
		t.Fatalf("SubtitleFiles() error = %v", err)
	}
	want := []string{
		filepath.Join("a", "0.srt"),
		filepath.Join("a", "1.srt"),
		filepath.Join("b", "2.srt"),
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].RelPath != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i].RelPath, want[i])
		}
	}
}

func TestSubtitleFiles_MissingRoot(t *testing.T) {
	if _, err := SubtitleFiles(filepath.Join(t.TempDir(), "nope"), "", nil, nil); err == nil {
		t.Error("SubtitleFiles() should fail for a missing root")
	}
}

func TestSubtitleFiles_SkipsUnreadableDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.srt"))
	locked := filepath.Join(root, "locked")
	touch(t, filepath.Join(locked, "b.srt"))
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	var skipped []string
	got, err := SubtitleFiles(root, "", nil, func(path string, _ error) {
		skipped = append(skipped, path)
	})
	if err != nil {
		t.Fatalf("SubtitleFiles() error = %v", err)
	}
	if len(got) != 1 || got[0].RelPath != "a.srt" {
		t.Errorf("got %+v, want only a.srt", got)
	}
	if len(skipped) != 1 || skipped[0] != locked {
		t.Errorf("skipped = %v, want [%s]", skipped, locked)
	}
}

func TestSkipUnreadable(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "sub", "x.srt"))
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	dir := entries[0]
	files, err := os.ReadDir(filepath.Join(root, "sub"))
	if err != nil {
		t.Fatal(err)
	}
	file := files[0]

	errDenied := errors.New("permission denied")
	tests := []struct {
		name     string
		path     string
		entry    fs.DirEntry
		want     error
		reported bool
	}{
		{"root", root, nil, errDenied, false},
		{"subdirectory", filepath.Join(root, "sub"), dir, filepath.SkipDir, true},
		{"file", filepath.Join(root, "sub", "x.srt"), file, nil, true},
		{"no entry", filepath.Join(root, "gone"), nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reported := false
			got := skipUnreadable(root, tt.path, tt.entry, errDenied, func(string, error) { reported = true })
			if got != tt.want {
				t.Errorf("skipUnreadable() = %v, want %v", got, tt.want)
			}
			if reported != tt.reported {
				t.Errorf("reported = %v, want %v", reported, tt.reported)
			}
		})
	}
}

func TestIsUnder(t *testing.T) {
	base := filepath.Join("root", "Subtitles")
	tests := []struct {
		path string
		want bool
	}{
		{base, true},
		{filepath.Join(base, "x.txt"), true},
		{filepath.Join("root", "SubtitlesOld", "x.srt"), false},
		{filepath.Join("root", "x.srt"), false},
	}
	for _, tt := range tests {
		if got := IsUnder(tt.path, base); got != tt.want {
			t.Errorf("IsUnder(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsSubtitle(t *testing.T) {
	if !IsSubtitle("/x/Lecture.VTT", nil) {
		t.Error("IsSubtitle(.VTT) = false, want true")
	}
	if IsSubtitle("/x/Lecture.mp4", nil) {
		t.Error("IsSubtitle(.mp4) = true, want false")
	}
}
