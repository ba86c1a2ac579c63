package dataset

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Set is the pair of tables plotted in one figure.
type Set struct {
	Transistors Table
	Storage     Table
}

// Builtin returns the built-in tables.
func Builtin() Set {
	return Set{Transistors: Transistors(), Storage: Storage()}
}

// Validate validates both tables.
func (s Set) Validate() error {
	if err := s.Transistors.Validate(); err != nil {
		return err
	}
	return s.Storage.Validate()
}

// LoadFile reads a dataset file (any format viper understands: yaml, toml, json).
// The file holds a "transistors" list and/or a "storage" list of {year, device, value}
// entries; a missing list keeps the built-in table. The result is validated.
//
//	transistors:
//	  - {year: 1971, device: Intel 4004, value: 2300}
func LoadFile(path string) (Set, error) {
	set := Builtin()
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Set{}, errors.Wrapf(err, "read dataset file %s", path)
	}
	for _, t := range []*Table{&set.Transistors, &set.Storage} {
		if !v.IsSet(t.Name) {
			continue
		}
		var recs []Record
		if err := v.UnmarshalKey(t.Name, &recs); err != nil {
			return Set{}, errors.Wrapf(err, "decode %s in %s", t.Name, path)
		}
		t.Records = recs
	}
	if err := set.Validate(); err != nil {
		return Set{}, errors.Wrapf(err, "dataset file %s", path)
	}
	return set, nil
}
