package checkpoint

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "processed_files.json")
	if err := os.WriteFile(file, []byte(`["b.xlsx","a.xlsx"]`), 0644); err != nil {
		t.Fatalf("%v", err)
	}

	set, err := Load(file)
	if err != nil {
		t.Fatalf("Unexpected error loading checkpoint (%v)", err)
	}

	if !set.Has("a.xlsx") || !set.Has("b.xlsx") || set.Len() != 2 {
		t.Errorf("Incorrect checkpoint set - expected:[a.xlsx b.xlsx], got:%v", set.Sorted())
	}
}

func TestLoadWithMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "processed_files.json")

	set, err := Load(file)
	if err != nil {
		t.Fatalf("Unexpected error loading missing checkpoint (%v)", err)
	}

	if set.Len() != 0 {
		t.Errorf("Expected empty checkpoint set, got %v", set.Sorted())
	}

	bytes, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Expected checkpoint file to be created (%v)", err)
	}

	if string(bytes) != "[]" {
		t.Errorf("Incorrect checkpoint file - expected:[], got:%s", bytes)
	}
}

func TestLoadWithInvalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "processed_files.json")
	if err := os.WriteFile(file, []byte(`{"a.xlsx":true}`), 0644); err != nil {
		t.Fatalf("%v", err)
	}

	if _, err := Load(file); err == nil {
		t.Errorf("Expected error loading invalid checkpoint file")
	}
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state", "processed_files.json")
	set := Set{}
	set.Add("f2.xlsx")
	set.Add("f1.xlsx")
	set.Add("Báo cáo.xlsx")

	if err := Save(file, set); err != nil {
		t.Fatalf("Unexpected error saving checkpoint (%v)", err)
	}

	bytes, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("%v", err)
	}

	expected := `["Báo cáo.xlsx","f1.xlsx","f2.xlsx"]`
	if string(bytes) != expected {
		t.Errorf("Incorrect checkpoint file\n   expected: %v\n   got:      %s", expected, bytes)
	}

	reloaded, err := Load(file)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if !reflect.DeepEqual(reloaded, set) {
		t.Errorf("Incorrect reloaded checkpoint - expected:%v, got:%v", set.Sorted(), reloaded.Sorted())
	}
}

func TestClone(t *testing.T) {
	set := Set{}
	set.Add("a.xlsx")

	clone := set.Clone()
	clone.Add("b.xlsx")

	if set.Has("b.xlsx") {
		t.Errorf("Clone shares storage with original set")
	}
}
