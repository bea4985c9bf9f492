package content

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// fakeFS returns a read func serving an in-memory path->body map
func fakeFS(files map[string]string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		if body, ok := files[filepath.ToSlash(path)]; ok {
			return []byte(body), nil
		}
		return nil, os.ErrNotExist
	}
}

func TestLoadLocaleSpecificBody(t *testing.T) {
	s := NewStore("pages", "en")
	s.read = fakeFS(map[string]string{
		"pages/fr/about": "À propos",
		"pages/en/about": "About text",
	})

	if got := s.Load("fr", "about"); got != "À propos" {
		t.Errorf("Load(fr, about) = %q, want the French body", got)
	}
}

func TestLoadFallsBackToDefaultLocale(t *testing.T) {
	s := NewStore("pages", "en")
	s.read = fakeFS(map[string]string{
		"pages/en/about": "About text",
	})

	if got := s.Load("fr", "about"); got != "About text" {
		t.Errorf("Load(fr, about) = %q, want default-locale body", got)
	}
}

func TestLoadMissingEverywhereDegrades(t *testing.T) {
	s := NewStore("pages", "en")
	s.read = fakeFS(map[string]string{})

	if got := s.Load("fr", "nothere"); got != "Can't load page." {
		t.Errorf("Load on fully missing page = %q, want placeholder", got)
	}
}

func TestLoadNeverPanicsOnEmptyLocale(t *testing.T) {
	s := NewStore("pages", "en")
	s.read = fakeFS(map[string]string{
		"pages/en/about": "About text",
	})

	if got := s.Load("", "about"); got != "About text" {
		t.Errorf("Load with empty locale = %q, want default-locale body", got)
	}
}

func TestList(t *testing.T) {
	root := t.TempDir()
	enDir := filepath.Join(root, "en")
	if err := os.MkdirAll(enDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, page := range []string{"welcome", "about", "involved"} {
		if err := os.WriteFile(filepath.Join(enDir, page), []byte(page), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Subdirectories are not pages
	if err := os.MkdirAll(filepath.Join(enDir, "img"), 0755); err != nil {
		t.Fatal(err)
	}

	s := NewStore(root, "en")
	got, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"about", "involved", "welcome"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestListMissingDefaultDir(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "pages"), "en")
	if _, err := s.List(); err == nil {
		t.Error("expected an error for a missing default-locale directory")
	}
}
