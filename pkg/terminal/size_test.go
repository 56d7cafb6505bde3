package terminal

import "testing"

func TestEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"120", 120},
		{"", 80},
		{"abc", 80},
		{"0", 80},
		{"-5", 80},
	}
	for _, tt := range tests {
		t.Setenv("COLUMNS", tt.value)
		if got := envInt("COLUMNS", 80); got != tt.want {
			t.Errorf("envInt(COLUMNS=%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestSizeFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "50")
	s := sizeFromEnv()
	if s.Cols != 100 || s.Rows != 50 {
		t.Errorf("sizeFromEnv() = %+v, want 100x50", s)
	}
}

func TestGetSizeNeverZero(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")
	s := GetSize()
	if s.Cols <= 0 || s.Rows <= 0 {
		t.Errorf("GetSize() = %+v, want positive dimensions", s)
	}
}
