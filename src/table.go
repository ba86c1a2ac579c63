package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iafilius/MooresLaw/src/dataset"
	"github.com/iafilius/MooresLaw/src/figure"
)

// row is one printable dataset record.
type row struct {
	Dataset string  `json:"dataset"`
	Year    int     `json:"year"`
	Device  string  `json:"device"`
	Value   float64 `json:"value"`
	Label   string  `json:"label"`
}

var rowHeaders = []string{"Dataset", "Year", "Device", "Value", "Label"}

func (r row) values() []string {
	return []string{r.Dataset, strconv.Itoa(r.Year), r.Device, humanizeValue(r.Value), r.Label}
}

// humanizeValue prints integral counts with thousands separators and keeps up to
// two decimals for fractional capacities.
func humanizeValue(v float64) string {
	if v == float64(int64(v)) {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 2)
}

// tableRows lists the selected datasets; a non-zero year keeps only that year's records.
func tableRows(set dataset.Set, which string, year int) ([]row, error) {
	type source struct {
		t      dataset.Table
		format figure.TickFormatter
	}
	var sources []source
	switch which {
	case "all", "":
		sources = []source{{set.Transistors, figure.FormatTransistorTick}, {set.Storage, figure.FormatStorageTick}}
	case dataset.TransistorsName:
		sources = []source{{set.Transistors, figure.FormatTransistorTick}}
	case dataset.StorageName:
		sources = []source{{set.Storage, figure.FormatStorageTick}}
	default:
		return nil, errors.Errorf("unknown dataset %q (want transistors, storage or all)", which)
	}
	var rows []row
	for _, s := range sources {
		records := s.t.Records
		if year != 0 {
			records = nil
			if r, ok := s.t.Lookup(year); ok {
				records = []dataset.Record{r}
			}
		}
		for _, r := range records {
			rows = append(rows, row{Dataset: s.t.Name, Year: r.Year, Device: r.Device, Value: r.Value, Label: s.format(r.Value)})
		}
	}
	if year != 0 && len(rows) == 0 {
		return nil, errors.Errorf("no record for year %d in dataset %q", year, which)
	}
	return rows, nil
}

// rowWriter prints rows in one output format.
type rowWriter interface {
	Write(rows []row) error
}

type textWriter struct{ w io.Writer }

type csvWriter struct{ w io.Writer }

type jsonWriter struct{ w io.Writer }

func newRowWriter(w io.Writer, format string) (rowWriter, error) {
	switch format {
	case "text", "":
		return textWriter{w}, nil
	case "csv":
		return csvWriter{w}, nil
	case "json":
		return jsonWriter{w}, nil
	}
	return nil, errors.Errorf("unknown format %q (want text, csv or json)", format)
}

func (w textWriter) Write(rows []row) error {
	table := tablewriter.NewWriter(w.w)
	table.Header(rowHeaders)
	for _, r := range rows {
		if err := table.Append(r.values()); err != nil {
			return errors.Wrap(err, "append table row")
		}
	}
	return table.Render()
}

func (w csvWriter) Write(rows []row) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(rowHeaders); err != nil {
		return err
	}
	for _, r := range rows {
		rec := r.values()
		rec[3] = strconv.FormatFloat(r.Value, 'f', -1, 64)
		if err := wtr.Write(rec); err != nil {
			return err
		}
	}
	wtr.Flush()
	return wtr.Error()
}

func (w jsonWriter) Write(rows []row) error {
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func newTableCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the plotted datasets with their axis labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			which, _ := cmd.Flags().GetString("dataset")
			year, _ := cmd.Flags().GetInt("year")
			w, err := newRowWriter(a.stdout, format)
			if err != nil {
				return err
			}
			set, err := a.loadData()
			if err != nil {
				return err
			}
			rows, err := tableRows(set, which, year)
			if err != nil {
				return err
			}
			a.log.Debug().Int("rows", len(rows)).Str("format", format).Msg("printing datasets")
			return w.Write(rows)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, csv or json")
	cmd.Flags().String("dataset", "all", "Dataset to print: transistors, storage or all")
	cmd.Flags().Int("year", 0, "Only print the records of this year")
	return cmd
}
