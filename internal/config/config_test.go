package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInstitutionsDefault(t *testing.T) {
	institutions, err := LoadInstitutions("")
	if err != nil {
		t.Fatalf("LoadInstitutions: %v", err)
	}
	if len(institutions) != 4 {
		t.Fatalf("default directory size = %d, want 4", len(institutions))
	}
	if institutions[0].ID != "fidelity" || !institutions[0].Connected {
		t.Errorf("institutions[0] = %+v", institutions[0])
	}
}

func TestLoadInstitutionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "institutions.yaml")
	content := `institutions:
  - id: northbank
    name: North Bank
    connected: true
    api_version: v1.0
  - id: coastal
    name: Coastal Credit Union
    connected: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	institutions, err := LoadInstitutions(path)
	if err != nil {
		t.Fatalf("LoadInstitutions: %v", err)
	}
	if len(institutions) != 2 {
		t.Fatalf("directory size = %d, want 2", len(institutions))
	}
	if institutions[0].ID != "northbank" || institutions[0].APIVersion != "v1.0" {
		t.Errorf("institutions[0] = %+v", institutions[0])
	}
	if institutions[1].Connected {
		t.Errorf("institutions[1] = %+v, want disconnected", institutions[1])
	}
}

func TestLoadInstitutionsMissingFile(t *testing.T) {
	if _, err := LoadInstitutions("/does/not/exist.yaml"); err == nil {
		t.Error("missing file did not error")
	}
}
