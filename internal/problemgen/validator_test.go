package problemgen

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultValidators_Chain(t *testing.T) {
	validators := DefaultValidators()
	names := []string{"structural", "range", "digits", "rule", "multiplication"}
	if len(validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(validators))
	}
	for i, v := range validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestCheck_FirstFailureWins(t *testing.T) {
	q, cfg := validAddition()
	q.ID = ""
	q.Answer = 99

	err := Check(q, cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Validator != "structural" {
		t.Errorf("expected structural failure first, got %q", err.Validator)
	}
}

func TestCheck_CustomChain(t *testing.T) {
	q, cfg := validAddition()
	q.Answer = 99

	if err := Check(q, cfg, &StructuralValidator{}); err != nil {
		t.Fatalf("structural alone should pass, got %v", err)
	}
	err := Check(q, cfg, &StructuralValidator{}, &RangeValidator{})
	if err == nil || err.Validator != "range" {
		t.Fatalf("expected range failure, got %v", err)
	}
}

func TestCheckSet_KeysByPosition(t *testing.T) {
	good, cfg := validAddition()
	bad := *good
	bad.Rows = []int{5, -3, 90}
	bad.Answer = 92

	failures := CheckSet([]Question{*good, bad, *good}, cfg)
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if _, ok := failures[1]; !ok {
		t.Errorf("expected failure at index 1, got %v", failures)
	}
}

func TestConfig_DefaultIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Count != 20 || cfg.RowCount != 6 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GenerationConfig)
		wantErr bool
	}{
		{"zero count", func(c *GenerationConfig) { c.Count = 0 }, false},
		{"max count", func(c *GenerationConfig) { c.Count = MaxCount }, false},
		{"negative count", func(c *GenerationConfig) { c.Count = -1 }, true},
		{"count too large", func(c *GenerationConfig) { c.Count = MaxCount + 1 }, true},
		{"unknown category", func(c *GenerationConfig) { c.Category = "division" }, true},
		{"unknown rule", func(c *GenerationConfig) { c.Rule = "best-friends" }, true},
		{"unknown digits", func(c *GenerationConfig) { c.DigitType = "triple" }, true},
		{"zero rows", func(c *GenerationConfig) { c.RowCount = 0 }, true},
		{"too many rows", func(c *GenerationConfig) { c.RowCount = MaxRowCount + 1 }, true},
		{"multiplication ignores rows", func(c *GenerationConfig) {
			c.Category = CategoryMultiplication
			c.RowCount = 0
			c.Rule = ""
		}, false},
		{"unknown level", func(c *GenerationConfig) {
			c.Category = CategoryMultiplication
			c.MultLevel = "4x4"
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("expected nil, got %v", err)
			}
		})
	}
}
