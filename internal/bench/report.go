package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/coregx/wildkmp"
)

// reportNames are the algorithm names written to the reports.
var reportNames = map[wildkmp.Algorithm]string{
	wildkmp.Naive:     "stupid",
	wildkmp.Concat:    "kmp",
	wildkmp.Optimized: "refined_kmp",
	wildkmp.Hash:      "hash",
}

// ReportName returns the report name of alg.
func ReportName(alg wildkmp.Algorithm) string {
	if name, ok := reportNames[alg]; ok {
		return name
	}
	return alg.String()
}

// FileName returns the report file name for a corpus and wildcard count.
func FileName(corpus string, wildcards int) string {
	return fmt.Sprintf("%s_count_q_is_%d.csv", corpus, wildcards)
}

// Row is one report line.
type Row struct {
	Algorithm  wildkmp.Algorithm
	PatternLen int
	Nanos      int64
}

// ReportWriter writes ';'-delimited rows under the header
// algo_name;pattern_len;time.
type ReportWriter struct {
	w *csv.Writer
}

// NewReportWriter writes the header to w.
func NewReportWriter(w io.Writer) (*ReportWriter, error) {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"algo_name", "pattern_len", "time"}); err != nil {
		return nil, err
	}
	return &ReportWriter{w: cw}, nil
}

// Write appends one row.
func (r *ReportWriter) Write(row Row) error {
	return r.w.Write([]string{
		ReportName(row.Algorithm),
		strconv.Itoa(row.PatternLen),
		strconv.FormatInt(row.Nanos, 10),
	})
}

// Flush writes buffered rows and reports any write error.
func (r *ReportWriter) Flush() error {
	r.w.Flush()
	return r.w.Error()
}
