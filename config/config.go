// Package config loads the YAML input file consumed by cmd/spagc: one
// scanner source and zero or more BNF grammar sources. This is ambient
// CLI plumbing (spec.md §1 lists "configuration file loading" as out of
// scope for the core) kept in the teacher's own idiom.
//
// Grounded on projectdiscovery/alterx's config.go: NewConfig/GenerateSample
// around a yaml.v3-tagged struct.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spag/spag/bnf"
	"github.com/spag/spag/scanner"
)

// DefaultFilePath is where cmd/spagc looks for its input file when none is
// given on the command line.
const DefaultFilePath = "spag.yaml"

// RuleConfig is one named regex rule, in declaration order.
type RuleConfig struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// ScannerConfig describes one named scanner source.
type ScannerConfig struct {
	Name  string       `yaml:"name"`
	Rules []RuleConfig `yaml:"rules"`
}

// ToSource converts sc into the scanner package's input type.
func (sc ScannerConfig) ToSource() scanner.Source {
	rules := make([]scanner.Rule, len(sc.Rules))
	for i, r := range sc.Rules {
		rules[i] = scanner.Rule{Name: r.Name, Pattern: r.Pattern}
	}
	return scanner.Source{Name: sc.Name, Rules: rules}
}

// GrammarConfig describes one named BNF grammar source. Productions is the
// textual "LHS -> RHS | RHS" form of bnf.ParseProductions.
type GrammarConfig struct {
	Name        string `yaml:"name"`
	Start       string `yaml:"start"`
	Productions string `yaml:"productions"`
}

// ToSource parses gc.Productions and converts gc into the bnf package's
// input type.
func (gc GrammarConfig) ToSource() (bnf.Source, error) {
	prods, err := bnf.ParseProductions(gc.Productions)
	if err != nil {
		return bnf.Source{}, err
	}
	return bnf.Source{Name: gc.Name, Start: gc.Start, Productions: prods}, nil
}

// Spec is the top-level YAML document shape.
type Spec struct {
	Scanner  *ScannerConfig  `yaml:"scanner,omitempty"`
	Grammars []GrammarConfig `yaml:"grammars,omitempty"`
}

// NewConfig reads and parses the YAML file at filePath.
func NewConfig(filePath string) (*Spec, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var spec Spec
	if err := yaml.Unmarshal(bin, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// GenerateSample writes a worked example input file to filePath, covering
// spec.md §8's end-to-end scenario 2 (a prefix-colliding scanner) and
// scenario 4 (a balanced-bracket grammar).
func GenerateSample(filePath string) error {
	spec := Spec{
		Scanner: &ScannerConfig{
			Name: "sample",
			Rules: []RuleConfig{
				{Name: "A", Pattern: "a"},
				{Name: "AB", Pattern: "ab"},
				{Name: "WS", Pattern: "[ \\t\\n]+"},
			},
		},
		Grammars: []GrammarConfig{
			{
				Name:        "balanced",
				Start:       "S",
				Productions: "S -> a S b | ",
			},
		},
	}
	bin, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
