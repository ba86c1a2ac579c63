package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTablesHoldInvariants(t *testing.T) {
	cases := []struct {
		table Table
		n     int
	}{
		{Transistors(), 18},
		{Storage(), 14},
	}
	for _, c := range cases {
		t.Run(c.table.Name, func(t *testing.T) {
			require.NoError(t, c.table.Validate())
			assert.Equal(t, c.n, c.table.Len())
			seen := map[int]bool{}
			for i, r := range c.table.Records {
				assert.False(t, seen[r.Year], "duplicate year %d", r.Year)
				seen[r.Year] = true
				if i > 0 {
					assert.Greater(t, r.Year, c.table.Records[i-1].Year)
				}
				assert.GreaterOrEqual(t, r.Year, 1971)
				assert.LessOrEqual(t, r.Year, 2022)
			}
		})
	}
}

func TestBuiltinBounds(t *testing.T) {
	min, max := Transistors().Bounds()
	assert.Equal(t, 2300.0, min)
	assert.Equal(t, 8e10, max)

	min, max = Storage().Bounds()
	assert.Equal(t, 0.1, min)
	assert.Equal(t, 26000.0, max)
}

func TestBuiltinReturnsCopies(t *testing.T) {
	a := Transistors()
	a.Records[0].Value = 1
	b := Transistors()
	assert.Equal(t, 2300.0, b.Records[0].Value)
}

func TestYearsAndValuesFollowDeclarationOrder(t *testing.T) {
	tbl := Storage()
	years, values := tbl.Years(), tbl.Values()
	require.Len(t, years, tbl.Len())
	require.Len(t, values, tbl.Len())
	assert.Equal(t, 1971.0, years[0])
	assert.Equal(t, 2022.0, years[len(years)-1])
	assert.Equal(t, 2.52, values[1])

	r, ok := tbl.Lookup(2007)
	require.True(t, ok)
	assert.Equal(t, "Hitachi Deskstar 7K1000", r.Device)
	_, ok = tbl.Lookup(1975)
	assert.False(t, ok)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		recs []Record
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"duplicate year", []Record{{2000, "a", 1}, {2000, "b", 2}}, ErrUnordered},
		{"descending", []Record{{2001, "a", 1}, {2000, "b", 2}}, ErrUnordered},
		{"zero value", []Record{{2000, "a", 0}}, ErrNonPositive},
		{"negative value", []Record{{2000, "a", -5}}, ErrNonPositive},
		{"missing device", []Record{{2000, "", 5}}, ErrNoDevice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Table{Name: "x", Records: c.recs}.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFileYAMLReplacesOneTable(t *testing.T) {
	p := writeFile(t, "data.yaml", `
transistors:
  - year: 1990
    device: Chip A
    value: 1000000
  - year: 2000
    device: Chip B
    value: 50000000
`)
	set, err := LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, 2, set.Transistors.Len())
	assert.Equal(t, Record{Year: 2000, Device: "Chip B", Value: 5e7}, set.Transistors.Records[1])
	assert.Equal(t, Storage().Records, set.Storage.Records)
}

func TestLoadFileTOML(t *testing.T) {
	p := writeFile(t, "data.toml", `
[[storage]]
year = 1980
device = "Disk"
value = 0.005

[[storage]]
year = 1990
device = "Bigger disk"
value = 1.5
`)
	set, err := LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, 2, set.Storage.Len())
	assert.Equal(t, 0.005, set.Storage.Records[0].Value)
	assert.Equal(t, Transistors().Records, set.Transistors.Records)
}

func TestLoadFileInvalid(t *testing.T) {
	p := writeFile(t, "bad.yaml", `
storage:
  - {year: 2000, device: a, value: 1}
  - {year: 1999, device: b, value: 2}
`)
	_, err := LoadFile(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnordered))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
