package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override format. Only the sections present in the
// file replace their built-in counterparts; everything else keeps the
// defaults.
type File struct {
	Vocabulary *Vocabulary `yaml:"vocabulary,omitempty"`
	Weights    *Weights    `yaml:"weights,omitempty"`
}

// Load reads a YAML override file and merges it over the defaults.
func Load(path string) (Vocabulary, Weights, error) {
	v, w := Default(), DefaultWeights()

	data, err := os.ReadFile(path)
	if err != nil {
		return v, w, fmt.Errorf("read vocabulary file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return v, w, fmt.Errorf("parse vocabulary file: %w", err)
	}

	return Merge(v, w, f)
}

// Merge applies a File's overrides to a base vocabulary and weight set.
// Empty lists in an override section fall back to the base list so a file
// that only tweaks one vocabulary cannot accidentally blank another.
func Merge(v Vocabulary, w Weights, f File) (Vocabulary, Weights, error) {
	if f.Vocabulary != nil {
		o := f.Vocabulary
		if len(o.GenericEmail) > 0 {
			v.GenericEmail = o.GenericEmail
		}
		if len(o.Irrelevant) > 0 {
			v.Irrelevant = o.Irrelevant
		}
		if len(o.Professional) > 0 {
			v.Professional = o.Professional
		}
		if len(o.Product) > 0 {
			v.Product = o.Product
		}
		if len(o.CompanyPage) > 0 {
			v.CompanyPage = o.CompanyPage
		}
		if len(o.CompanyPageChecks) > 0 {
			v.CompanyPageChecks = o.CompanyPageChecks
		}
	}

	if f.Weights != nil {
		o := f.Weights
		if o.MinScore < 0 || o.MinScore > 1 {
			return v, w, fmt.Errorf("min_score %v outside [0,1]", o.MinScore)
		}
		w = *o
		if w.ProfessionalCap <= 0 {
			w.ProfessionalCap = DefaultWeights().ProfessionalCap
		}
	}

	return v, w, nil
}
