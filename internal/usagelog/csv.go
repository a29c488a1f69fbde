package usagelog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"cng-analyzer/internal/model"
)

// DefaultPath is where the log lives when nothing else is configured.
const DefaultPath = "cng_usage_log.csv"

// DateLayout is the timestamp format of the Date column.
const DateLayout = "2006-01-02 15:04:05"

// NoPayback is written to the payback column when savings were <= 0.
const NoPayback = "No Payback"

// Header is the column row written once, when the file is created.
var Header = []string{
	"Date",
	"Petrol Price (₦/L)",
	"CNG Price (₦/SCM)",
	"Distance (km/month)",
	"Petrol Usage (L/100km)",
	"CNG Usage (SCM/100km)",
	"Petrol Cost/km",
	"CNG Cost/km",
	"Monthly Savings (₦)",
	"Payback Period (months)",
}

// Appender appends analysis rows to a CSV file.
//
// There is no locking: two processes appending at once may interleave rows.
type Appender struct {
	Path string
	// Now stamps each row. Defaults to time.Now.
	Now func() time.Time
}

// NewAppender returns an Appender for path, falling back to DefaultPath.
func NewAppender(path string) *Appender {
	if path == "" {
		path = DefaultPath
	}
	return &Appender{Path: path, Now: time.Now}
}

// Append writes one row for s and r, creating the file with a header first if
// it does not exist yet. Filesystem errors are returned as-is (wrapped); nothing
// is retried.
func (a *Appender) Append(s model.Scenario, r model.Result) error {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return a.write(NewEntry(now(), s, r))
}

func (a *Appender) write(e Entry) error {
	f, err := os.OpenFile(a.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open usage log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat usage log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write usage log header: %w", err)
		}
	}
	if err := w.Write(e.record()); err != nil {
		return fmt.Errorf("write usage log row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush usage log: %w", err)
	}
	return f.Close()
}

func (e Entry) record() []string {
	return []string{
		e.Date.Format(DateLayout),
		fmtFloat(e.PetrolPrice),
		fmtFloat(e.CNGPrice),
		fmtFloat(e.DistancePerMonth),
		fmtFloat(e.PetrolConsumption),
		fmtFloat(e.CNGConsumption),
		fmtFloat(e.PetrolCostPerKm),
		fmtFloat(e.CNGCostPerKm),
		fmtFloat(e.MonthlySavings),
		fmtPayback(e.Payback),
	}
}

// ReadAll parses every row of the log at path. A missing file yields no rows.
func ReadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open usage log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)

	var out []Entry
	for line := 0; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read usage log: %w", err)
		}
		if line == 0 && rec[0] == Header[0] {
			continue
		}
		e, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("usage log line %d: %w", line+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func parseRecord(rec []string) (Entry, error) {
	date, err := time.ParseInLocation(DateLayout, rec[0], time.Local)
	if err != nil {
		return Entry{}, err
	}
	nums := make([]float64, 8)
	for i := range nums {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return Entry{}, fmt.Errorf("column %q: %w", Header[i+1], err)
		}
		nums[i] = v
	}
	payback := model.NoPayback()
	if rec[9] != NoPayback {
		m, err := strconv.ParseFloat(rec[9], 64)
		if err != nil {
			return Entry{}, fmt.Errorf("column %q: %w", Header[9], err)
		}
		payback = model.PaybackIn(m)
	}
	return Entry{
		Date:              date,
		PetrolPrice:       nums[0],
		CNGPrice:          nums[1],
		DistancePerMonth:  nums[2],
		PetrolConsumption: nums[3],
		CNGConsumption:    nums[4],
		PetrolCostPerKm:   nums[5],
		CNGCostPerKm:      nums[6],
		MonthlySavings:    nums[7],
		Payback:           payback,
	}, nil
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func fmtPayback(p model.Payback) string {
	m, ok := p.Months()
	if !ok {
		return NoPayback
	}
	return fmtFloat(m)
}
