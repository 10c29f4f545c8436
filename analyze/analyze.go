// Package analyze measures how well the codecs do on a given input and
// renders the results as CSV reports and frequency charts. It exists for
// tooling and experiments; nothing in the codecs depends on it.
package analyze

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/cmpr-kit/cmpr"
)

// Report describes the outcome of compressing one input with one codec.
type Report struct {
	Name           string  `csv:"name"`
	Codec          string  `csv:"codec"`
	OriginalSize   int     `csv:"original_size"`
	CompressedSize int     `csv:"compressed_size"`
	// Ratio is compressed size over original size; values above 1 mean the
	// codec expanded the input.
	Ratio float64 `csv:"ratio"`
}

// Measure runs every codec over the input and reports the resulting sizes.
// The name is carried through to the report rows untouched.
func Measure(name string, data []byte, codecs []cmpr.Codec) ([]Report, error) {
	reports := make([]Report, 0, len(codecs))
	for _, codec := range codecs {
		encoded, err := codec.Encode(data)
		if err != nil {
			return nil, err
		}
		reports = append(reports, Report{
			Name:           name,
			Codec:          codec.Postfix(),
			OriginalSize:   len(data),
			CompressedSize: len(encoded),
			Ratio:          float64(len(encoded)) / float64(len(data)),
		})
	}
	return reports, nil
}

// WriteCSV writes the reports as CSV, one row per codec run.
func WriteCSV(reports []Report, w io.Writer) error {
	return gocsv.Marshal(&reports, w)
}

// FrequencyChart renders a scatter plot of the input's symbol frequencies
// as SVG. Symbols that never occur are left off the plot.
func FrequencyChart(data []byte, w io.Writer) error {
	var freqs [256]int
	for _, sym := range data {
		freqs[sym]++
	}

	xvals := make([]float64, 0, len(freqs))
	yvals := make([]float64, 0, len(freqs))
	for sym, count := range freqs {
		if count == 0 {
			continue
		}
		xvals = append(xvals, float64(sym))
		yvals = append(yvals, float64(count))
	}

	graph := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}
	return graph.Render(chart.SVG, w)
}
