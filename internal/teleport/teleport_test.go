package teleport_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wwwyo/goto-cd/internal/config"
	"github.com/wwwyo/goto-cd/internal/document"
	gerrors "github.com/wwwyo/goto-cd/internal/errors"
	platformfs "github.com/wwwyo/goto-cd/internal/platform/fs"
	"github.com/wwwyo/goto-cd/internal/profile"
	"github.com/wwwyo/goto-cd/internal/teleport"
)

const testHome = "/home/test/.config/goto-cd"

// setupTestEnv creates a teleport manager over a fresh mock config home.
func setupTestEnv(t *testing.T) (*platformfs.MockFileSystem, *profile.Manager, *teleport.Manager) {
	t.Helper()

	mock := platformfs.NewMockFileSystem()
	mock.Dirs["/home/test/src"] = true
	mock.Dirs["/home/test/docs"] = true

	store, err := document.NewStore(mock, config.Home{Path: testHome, Format: config.FormatTOML}, nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	profiles := profile.NewManager(store, profile.NewSettingsManager(store), nil)
	return mock, profiles, teleport.NewManager(mock, profiles)
}

func TestSetTeleport(t *testing.T) {
	_, _, mgr := setupTestEnv(t)

	aliases, err := mgr.ListTeleports()
	if err != nil {
		t.Fatalf("ListTeleports() error = %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("ListTeleports() = %v, want empty", aliases)
	}

	if err := mgr.SetTeleport("src", "/home/test/src"); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}
	aliases, err = mgr.ListTeleports()
	if err != nil {
		t.Fatalf("ListTeleports() error = %v", err)
	}
	if !reflect.DeepEqual(aliases, []string{"src"}) {
		t.Errorf("ListTeleports() = %v, want [src]", aliases)
	}

	target, err := mgr.TeleportTarget("src")
	if err != nil {
		t.Fatalf("TeleportTarget() error = %v", err)
	}
	if target != "/home/test/src" {
		t.Errorf("TeleportTarget() = %v, want /home/test/src", target)
	}
}

func TestSetTeleportResolvesPaths(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"relative", "src", "/home/test/src"},
		{"dot relative", "./docs", "/home/test/docs"},
		{"tilde", "~/src", "/home/test/src"},
		{"unclean", "/home/test/src/../docs/", "/home/test/docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, mgr := setupTestEnv(t)
			if err := mgr.SetTeleport("x", tt.target); err != nil {
				t.Fatalf("SetTeleport() error = %v", err)
			}
			got, err := mgr.TeleportTarget("x")
			if err != nil {
				t.Fatalf("TeleportTarget() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TeleportTarget() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetTeleportOverwrites(t *testing.T) {
	_, _, mgr := setupTestEnv(t)

	if err := mgr.SetTeleport("x", "/home/test/src"); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}
	if err := mgr.SetTeleport("x", "/home/test/docs"); err != nil {
		t.Fatalf("SetTeleport() overwrite error = %v", err)
	}
	got, _ := mgr.TeleportTarget("x")
	if got != "/home/test/docs" {
		t.Errorf("TeleportTarget() = %v, want /home/test/docs", got)
	}
}

func TestSetTeleportErrors(t *testing.T) {
	_, _, mgr := setupTestEnv(t)

	if err := mgr.SetTeleport("abcd", "./notanexistantdirectory"); !errors.Is(err, gerrors.ErrTargetNotFound) {
		t.Errorf("SetTeleport() missing dir error = %v, want ErrTargetNotFound", err)
	}
	if err := mgr.SetTeleport("", "/home/test/src"); !errors.Is(err, gerrors.ErrInvalidName) {
		t.Errorf("SetTeleport() empty alias error = %v, want ErrInvalidName", err)
	}
}

func TestSetTeleportRejectsFile(t *testing.T) {
	mock, _, mgr := setupTestEnv(t)
	mock.Files["/home/test/src/README"] = []byte("hi")

	if err := mgr.SetTeleport("readme", "/home/test/src/README"); !errors.Is(err, gerrors.ErrTargetNotFound) {
		t.Errorf("SetTeleport() on a file error = %v, want ErrTargetNotFound", err)
	}
}

func TestRemoveTeleport(t *testing.T) {
	_, _, mgr := setupTestEnv(t)

	if err := mgr.SetTeleport("thisdir", "/home/test/src"); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}
	if err := mgr.RemoveTeleport("thisdir"); err != nil {
		t.Fatalf("RemoveTeleport() error = %v", err)
	}

	aliases, _ := mgr.ListTeleports()
	if len(aliases) != 0 {
		t.Errorf("ListTeleports() = %v, want empty", aliases)
	}
	if _, err := mgr.TeleportTarget("thisdir"); !errors.Is(err, gerrors.ErrNotFound) {
		t.Errorf("TeleportTarget() after remove error = %v, want ErrNotFound", err)
	}
}

func TestRemoveTeleportErrors(t *testing.T) {
	_, _, mgr := setupTestEnv(t)

	if err := mgr.RemoveTeleport("abcd"); !errors.Is(err, gerrors.ErrNotFound) {
		t.Errorf("RemoveTeleport() error = %v, want ErrNotFound", err)
	}
	if _, err := mgr.TeleportTarget("abcd"); !errors.Is(err, gerrors.ErrNotFound) {
		t.Errorf("TeleportTarget() error = %v, want ErrNotFound", err)
	}
}

func TestMatchingTeleports(t *testing.T) {
	mock, _, mgr := setupTestEnv(t)
	for _, name := range []string{"a", "abcd", "b"} {
		dir := "/home/test/" + name
		mock.Dirs[dir] = true
		if err := mgr.SetTeleport(name, dir); err != nil {
			t.Fatalf("SetTeleport(%s) error = %v", name, err)
		}
	}

	tests := []struct {
		prefix string
		want   []string
	}{
		{"a", []string{"a", "abcd"}},
		{"b", []string{"b"}},
		{"ab", []string{"abcd"}},
		{"A", []string{}},
		{"", []string{"a", "abcd", "b"}},
	}

	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			got, err := mgr.MatchingTeleports(tt.prefix)
			if err != nil {
				t.Fatalf("MatchingTeleports() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchingTeleports(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestTeleportsAreScopedToActiveProfile(t *testing.T) {
	_, profiles, mgr := setupTestEnv(t)

	if err := mgr.SetTeleport("src", "/home/test/src"); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}
	if err := profiles.AddProfile("work"); err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	if err := profiles.Settings().SetCurrentProfile("work"); err != nil {
		t.Fatalf("SetCurrentProfile() error = %v", err)
	}

	aliases, err := mgr.ListTeleports()
	if err != nil {
		t.Fatalf("ListTeleports() error = %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("work ListTeleports() = %v, want empty", aliases)
	}

	def, err := profiles.GetDefaultProfile()
	if err != nil {
		t.Fatalf("GetDefaultProfile() error = %v", err)
	}
	if def.Table(teleport.Key)["src"] != "/home/test/src" {
		t.Errorf("default profile teleports = %v", def.Table(teleport.Key))
	}
}

func TestSetTeleportKeepsOtherKeys(t *testing.T) {
	_, profiles, mgr := setupTestEnv(t)

	if err := profiles.UpdateDefaultProfile(document.Document{"editor": "vim"}); err != nil {
		t.Fatalf("UpdateDefaultProfile() error = %v", err)
	}
	if err := mgr.SetTeleport("src", "/home/test/src"); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}

	doc, err := profiles.GetDefaultProfile()
	if err != nil {
		t.Fatalf("GetDefaultProfile() error = %v", err)
	}
	if doc["editor"] != "vim" {
		t.Errorf("default profile = %v, want editor key kept", doc)
	}
}

func TestTeleportsAndPrune(t *testing.T) {
	mock, _, mgr := setupTestEnv(t)

	if err := mgr.SetTeleport("src", "/home/test/src"); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}
	if err := mgr.SetTeleport("docs", "/home/test/docs"); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}

	entries, err := mgr.Teleports()
	if err != nil {
		t.Fatalf("Teleports() error = %v", err)
	}
	want := []teleport.Teleport{
		{Alias: "docs", Target: "/home/test/docs"},
		{Alias: "src", Target: "/home/test/src"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Teleports() = %v, want %v", entries, want)
	}

	delete(mock.Dirs, "/home/test/docs")

	stale, err := mgr.StaleTeleports()
	if err != nil {
		t.Fatalf("StaleTeleports() error = %v", err)
	}
	if !reflect.DeepEqual(stale, want[:1]) {
		t.Errorf("StaleTeleports() = %v, want %v", stale, want[:1])
	}

	// Stale entries are still readable until pruned.
	if _, err := mgr.TeleportTarget("docs"); err != nil {
		t.Errorf("TeleportTarget() before prune error = %v", err)
	}

	pruned, err := mgr.PruneTeleports()
	if err != nil {
		t.Fatalf("PruneTeleports() error = %v", err)
	}
	if !reflect.DeepEqual(pruned, want[:1]) {
		t.Errorf("PruneTeleports() = %v, want %v", pruned, want[:1])
	}
	aliases, _ := mgr.ListTeleports()
	if !reflect.DeepEqual(aliases, []string{"src"}) {
		t.Errorf("ListTeleports() after prune = %v, want [src]", aliases)
	}

	pruned, err = mgr.PruneTeleports()
	if err != nil {
		t.Fatalf("second PruneTeleports() error = %v", err)
	}
	if len(pruned) != 0 {
		t.Errorf("second PruneTeleports() = %v, want none", pruned)
	}
}

func TestTeleportOnDisk(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "project")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("failed to create target: %v", err)
	}

	fsys := platformfs.NewFileSystem()
	home, err := config.Resolve(fsys, config.Options{Home: filepath.Join(root, "home")})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	store, err := document.NewStore(fsys, home, nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	mgr := teleport.NewManager(fsys, profile.NewManager(store, profile.NewSettingsManager(store), nil))

	if err := mgr.SetTeleport("project", target); err != nil {
		t.Fatalf("SetTeleport() error = %v", err)
	}
	got, err := mgr.TeleportTarget("project")
	if err != nil {
		t.Fatalf("TeleportTarget() error = %v", err)
	}
	if got != target {
		t.Errorf("TeleportTarget() = %v, want %v", got, target)
	}

	if err := mgr.SetTeleport("missing", filepath.Join(root, "nope")); !errors.Is(err, gerrors.ErrTargetNotFound) {
		t.Errorf("SetTeleport() error = %v, want ErrTargetNotFound", err)
	}
}
