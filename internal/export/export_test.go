package export

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cng-analyzer/internal/model"
)

func noPaybackResult() model.Result {
	s := model.DefaultScenario()
	s.DistancePerMonth = 0
	return model.Analyze(s)
}

// pdfStrings decodes every literal string in an uncompressed PDF, undoing
// backslash escapes, so drawn text can be compared as written.
func pdfStrings(b []byte) []string {
	var (
		out   []string
		cur   []byte
		depth int
	)
	for i := 0; i < len(b); i++ {
		c := b[i]
		if depth == 0 {
			if c == '(' {
				depth = 1
				cur = cur[:0]
			}
			continue
		}
		switch c {
		case '\\':
			if i+1 < len(b) {
				i++
				switch b[i] {
				case 'n':
					cur = append(cur, '\n')
				case 'r':
					cur = append(cur, '\r')
				case 't':
					cur = append(cur, '\t')
				default:
					cur = append(cur, b[i])
				}
			}
		case '(':
			depth++
			cur = append(cur, c)
		case ')':
			depth--
			if depth == 0 {
				out = append(out, string(cur))
				continue
			}
			cur = append(cur, c)
		default:
			cur = append(cur, c)
		}
	}
	return out
}

func TestPDFStrings(t *testing.T) {
	got := pdfStrings([]byte(`BT (a \(b\) c) Tj (x\\y) Tj ET`))
	assert.Equal(t, []string{"a (b) c", `x\y`}, got)
}

func TestPDF_ContainsFormattedValues(t *testing.T) {
	out, err := PDF(model.Analyze(model.DefaultScenario()))
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	text := pdfStrings(out)
	for _, want := range []string{
		"CNG vs Petrol Efficiency Report",
		"Petrol Cost per km: NGN 85.00",
		"CNG Cost per km: NGN 14.95",
		"Monthly Savings: NGN 70050.00",
		"Payback Period: 3.6 months",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "No Payback (No Savings)")
}

func TestPDF_NoPayback(t *testing.T) {
	out, err := PDF(noPaybackResult())
	require.NoError(t, err)

	text := pdfStrings(out)
	assert.Contains(t, text, "No Payback (No Savings)")
	assert.Contains(t, text, "Monthly Savings: NGN 0.00")
	for _, s := range text {
		assert.NotContains(t, s, "Payback Period:")
	}
}

func readSheet(t *testing.T, b []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestXLSX_SingleRowRoundTrip(t *testing.T) {
	r := model.Analyze(model.DefaultScenario())
	out, err := XLSX(r)
	require.NoError(t, err)

	rows := readSheet(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Petrol Cost/km", "CNG Cost/km", "Monthly Savings", "Payback Period (months)"}, rows[0])
	require.Len(t, rows[1], 4)

	want := []float64{r.PetrolCostPerKm, r.CNGCostPerKm, r.MonthlySavings}
	months, ok := r.Payback.Months()
	require.True(t, ok)
	want = append(want, months)

	for i, w := range want {
		got, err := strconv.ParseFloat(rows[1][i], 64)
		require.NoError(t, err, "column %d", i)
		assert.InDelta(t, w, got, 1e-9, "column %d", i)
	}
}

func TestXLSX_NoPayback(t *testing.T) {
	out, err := XLSX(noPaybackResult())
	require.NoError(t, err)

	rows := readSheet(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, NoPayback, rows[1][3])
	assert.Equal(t, "0", rows[1][2])
}
