package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDir(t *testing.T) {
	t.Setenv("BAATCHIT_HOME", "")
	home, _ := os.UserHomeDir()
	got := Dir("main")
	want := filepath.Join(home, ".baatchit", "sessions", "main")
	if got != want {
		t.Errorf("Dir(main) = %q, want %q", got, want)
	}
}

func TestBaseDirOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("BAATCHIT_HOME", tmp)
	if got := BaseDir(); got != tmp {
		t.Errorf("BaseDir() = %q, want %q", got, tmp)
	}
}

func TestSocketPath(t *testing.T) {
	got := SocketPath("test")
	if !strings.HasSuffix(got, filepath.Join("sessions", "test", "daemon.sock")) {
		t.Errorf("SocketPath(test) = %q, want suffix sessions/test/daemon.sock", got)
	}
}

func TestDBAndLogPaths(t *testing.T) {
	if got := DBPath("test"); !strings.HasSuffix(got, filepath.Join("test", "baatchit.db")) {
		t.Errorf("DBPath(test) = %q", got)
	}
	if got := LogPath("test"); filepath.Dir(got) != LogDir("test") {
		t.Errorf("LogPath(test) = %q not under %q", got, LogDir("test"))
	}
}

func TestEnsureDirAndList(t *testing.T) {
	t.Setenv("BAATCHIT_HOME", t.TempDir())

	for _, name := range []string{"work", "main"} {
		if err := EnsureDir(name); err != nil {
			t.Fatal(err)
		}
	}
	info, err := os.Stat(LogDir("main"))
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("log dir is not a directory")
	}

	// A running session is detected by its socket file.
	if err := os.WriteFile(SocketPath("work"), nil, 0600); err != nil {
		t.Fatal(err)
	}

	sessions, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("List() = %d sessions, want 2", len(sessions))
	}
	if sessions[0].Name != "main" || sessions[0].Running {
		t.Errorf("sessions[0] = %+v, want main stopped", sessions[0])
	}
	if sessions[1].Name != "work" || !sessions[1].Running {
		t.Errorf("sessions[1] = %+v, want work running", sessions[1])
	}
}

func TestListWithoutBaseDir(t *testing.T) {
	t.Setenv("BAATCHIT_HOME", filepath.Join(t.TempDir(), "missing"))
	sessions, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 0 {
		t.Errorf("List() = %v, want empty", sessions)
	}
}
