package confutil_test

// Notes:
// - JSON inputs are exercised alongside YAML because the document config
//   contract is JSON; both decode through the same parser.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-hwpxgen/internal/confutil"
)

type testConfig struct {
	Name    string `yaml:"name" json:"name"`
	Count   int    `yaml:"count" json:"count"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses JSON and YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled {
					t.Errorf("decoded = %+v, want {test 42 true}", cfg)
				}
			},
		},
		{
			name: "valid JSON",
			data: []byte(`{"name":"test","count":42,"enabled":true}`),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled {
					t.Errorf("decoded = %+v, want {test 42 true}", cfg)
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: confutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: confutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: confutil.ErrNilDestination,
		},
		{
			name: "unicode content",
			data: []byte(`{"name":"보고서 제목"}`),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "보고서 제목" {
					t.Errorf("Name = %q, want %q", cfg.Name, "보고서 제목")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := confutil.UnmarshalStrict(tt.data, tt.dest)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict_InvalidSyntax(t *testing.T) {
	t.Parallel()

	err := confutil.UnmarshalStrict([]byte("name: [unclosed"), &testConfig{})
	if err == nil {
		t.Fatal("UnmarshalStrict() expected error for invalid syntax")
	}
	if !strings.Contains(err.Error(), "confutil:") {
		t.Errorf("error %q should be wrapped with confutil prefix", err)
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict_UnknownFields - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict_UnknownFields(t *testing.T) {
	t.Parallel()

	t.Run("known fields pass", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		if err := confutil.UnmarshalStrict([]byte(`{"name":"x","count":1}`), &cfg); err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := confutil.UnmarshalStrict([]byte(`{"name":"x","bogus":1}`), &cfg)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field")
		}
	})
}

// ---------------------------------------------------------------------------
// TestMaxInputSize - Size cap enforcement
// ---------------------------------------------------------------------------

func TestMaxInputSize(t *testing.T) {
	// Mutates package state; cannot run in parallel.
	orig := confutil.MaxInputSize
	confutil.MaxInputSize = 16
	defer func() { confutil.MaxInputSize = orig }()

	err := confutil.UnmarshalStrict([]byte(`{"name":"this is far too long"}`), &testConfig{})
	if !errors.Is(err, confutil.ErrInputTooLarge) {
		t.Fatalf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}
}
