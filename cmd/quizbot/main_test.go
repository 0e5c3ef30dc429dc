package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBankCheck_Embedded(t *testing.T) {
	t.Setenv("QUIZ_BANK_PATH", "")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bank", "check"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("bank check вернул ошибку: %v", err)
	}
	if !strings.HasPrefix(out.String(), "embedded: 30 questions OK") {
		t.Errorf("неожиданный вывод: %q", out.String())
	}
}

func TestBankCheck_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	data := `[{"id":1,"prompt":"Q","options":["a","b","c"],"correct":1}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"bank", "check", "--bank", path})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "expected 4 options") {
		t.Errorf("ожидалась ошибка валидации, получено %v", err)
	}
}
