package learconfigs

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/can-gurkan/lear/configs"
	"github.com/can-gurkan/lear/modes"
	"github.com/can-gurkan/lear/netlogo"
	"github.com/reusee/dscope"
)

func scopeWithConfig(t *testing.T, content string) dscope.Scope {
	var paths []string
	if content != "" {
		path := filepath.Join(t.TempDir(), "lear.cue")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, schema)
		},
	)
}

func TestDefaults(t *testing.T) {
	scopeWithConfig(t, "").Call(func(
		maxAttempts MaxAttempts,
		parallel Parallel,
		config netlogo.Config,
		params MovementParams,
		sensors Sensors,
		enabled EnabledChecks,
		dir ChecksDir,
	) {
		if maxAttempts != DefaultMaxAttempts {
			t.Fatalf("got %v", maxAttempts)
		}
		if parallel != DefaultParallel {
			t.Fatalf("got %v", parallel)
		}
		if config.MaxValue != netlogo.DefaultConfig().MaxValue {
			t.Fatalf("got %v", config.MaxValue)
		}
		if !slices.Equal(params.Forward, []int{1, 4, 7}) {
			t.Fatalf("got %v", params)
		}
		if len(sensors) != 9 {
			t.Fatalf("got %v", sensors)
		}
		if !slices.Equal(enabled, DefaultEnabledChecks()) {
			t.Fatalf("got %v", enabled)
		}
		if dir != "" {
			t.Fatalf("got %v", dir)
		}
	})
}

func TestConfigured(t *testing.T) {
	scopeWithConfig(t, `
max_attempts: 5
parallel: 16
vocabulary: {
	commands: ["jump"]
	reporters: {"distance-to-food": 0}
	variables: ["speed"]
	allowed: ["wait"]
	max_value: 360
	max_depth: 8
}
movement_params: forward: [1, 2]
checks: ["is_safe"]
checks_dir: "/tmp/checks"
`).Call(func(
		maxAttempts MaxAttempts,
		parallel Parallel,
		config netlogo.Config,
		params MovementParams,
		enabled EnabledChecks,
		dir ChecksDir,
	) {
		if maxAttempts != 5 {
			t.Fatalf("got %v", maxAttempts)
		}
		if parallel != 16 {
			t.Fatalf("got %v", parallel)
		}
		if !config.Commands["jump"] || !config.Commands["fd"] {
			t.Fatalf("got %v", config.Commands)
		}
		if arity, ok := config.Reporters["distance-to-food"]; !ok || arity != 0 {
			t.Fatalf("got %v", config.Reporters)
		}
		if config.Dangerous["wait"] || !config.Dangerous["die"] {
			t.Fatal()
		}
		if config.MaxValue != 360 || config.MinValue != -1000 {
			t.Fatalf("got %v %v", config.MinValue, config.MaxValue)
		}
		if config.MaxDepth != 8 {
			t.Fatalf("got %v", config.MaxDepth)
		}
		if !slices.Equal(params.Forward, []int{1, 2}) {
			t.Fatalf("got %v", params)
		}
		if !slices.Equal(params.Left, []int{15, 30, 45, 90}) {
			t.Fatalf("got %v", params)
		}
		if !slices.Equal(enabled, EnabledChecks{"is_safe"}) {
			t.Fatalf("got %v", enabled)
		}
		if dir != "/tmp/checks" {
			t.Fatalf("got %v", dir)
		}

		v := netlogo.New(config)
		if ok, msg := v.IsSafe("ifelse speed > distance-to-food [ jump 1 ] [ fd 1 ]"); !ok {
			t.Fatalf("got %v", msg)
		}
	})
}

func TestApplyKeepsDefaults(t *testing.T) {
	def := netlogo.DefaultConfig()
	config := Vocabulary{
		Commands: []string{"Jump"},
	}.Apply(def)
	if !config.Commands["jump"] {
		t.Fatal()
	}
	if def.Commands["jump"] {
		t.Fatal("default modified")
	}
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lear.cue")
	if err := os.WriteFile(path, []byte(`max_tokens: 1`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestVocabulariesMerged(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.cue")
	second := filepath.Join(dir, "second.cue")
	if err := os.WriteFile(first, []byte(`vocabulary: {
	commands: ["jump"]
	max_value: 360
}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte(`vocabulary: {
	variables: ["speed"]
	max_value: 100
	min_value: -100
}`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return NewLoader(first, second)
		},
	).Call(func(
		vocabularies Vocabularies,
		config netlogo.Config,
	) {
		if len(vocabularies) != 2 {
			t.Fatalf("got %v", vocabularies)
		}
		if !config.Commands["jump"] || !config.Variables["speed"] {
			t.Fatalf("got %v", config)
		}
		if config.MaxValue != 360 || config.MinValue != -100 {
			t.Fatalf("got %v %v", config.MinValue, config.MaxValue)
		}
	})
}
