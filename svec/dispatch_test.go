package svec

import (
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentName(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
	if NoSimdEnv() && (CurrentLevel() != DispatchScalar || HasHardwareFMA()) {
		t.Errorf("SVEC_NO_SIMD set but level = %v, fma = %v", CurrentLevel(), HasHardwareFMA())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("SVEC_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}
