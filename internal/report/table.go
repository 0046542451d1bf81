package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/clo-analytics/internal/pipeline"
)

func WriteTable(r *pipeline.Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== CLO Achievement: %s ===\n", r.Course)
	fmt.Fprintf(tw, "Students: %d\n\n", r.Students)

	writeAssessmentTable(tw, r)
	writeResultTable(tw, r)
	writeDiagnostics(tw, r)

	return tw.Flush()
}

func writeAssessmentTable(tw *tabwriter.Writer, r *pipeline.Report) {
	fmt.Fprintf(tw, "Assessments\n\n")

	header := []string{"Assessment", "Max", "Responses", "Average", "Achievement"}
	writeHeader(tw, header)

	for _, a := range r.Assessments {
		row := []string{
			a.Name,
			fmtNumber(a.MaxScore),
			fmt.Sprintf("%d", a.Responses),
			fmt.Sprintf("%.2f", a.Average),
			fmt.Sprintf("%.2f%%", a.Achievement),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeResultTable(tw *tabwriter.Writer, r *pipeline.Report) {
	fmt.Fprintf(tw, "CLO Results\n\n")

	header := []string{"CLO"}
	for _, a := range r.Assessments {
		header = append(header, a.Name)
	}
	header = append(header, "TOTAL", "MET")
	writeHeader(tw, header)

	for _, res := range r.Results {
		row := []string{res.CLO}
		for _, c := range res.Contributions {
			row = append(row, fmt.Sprintf("%.2f", c.Value))
		}
		row = append(row, fmt.Sprintf("%.2f", res.Total), res.Status())
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeDiagnostics(tw *tabwriter.Writer, r *pipeline.Report) {
	d := r.Diagnostics
	if !d.HeaderDropped && d.LeadingColumnsDropped == 0 && d.EmptyRowsDropped == 0 &&
		d.CoercedCells == 0 && d.MissingRowsDropped == 0 {
		return
	}

	fmt.Fprintf(tw, "Input Notes\n\n")
	if d.HeaderDropped {
		fmt.Fprintf(tw, "header row dropped:\t%s\n", strings.Join(d.Header, ", "))
	}
	if d.LeadingColumnsDropped > 0 {
		fmt.Fprintf(tw, "leading columns ignored:\t%d\n", d.LeadingColumnsDropped)
	}
	if d.EmptyRowsDropped > 0 {
		fmt.Fprintf(tw, "empty rows skipped:\t%d\n", d.EmptyRowsDropped)
	}
	if d.CoercedCells > 0 {
		fmt.Fprintf(tw, "unparsable cells treated as missing:\t%d\n", d.CoercedCells)
	}
	if d.MissingRowsDropped > 0 {
		fmt.Fprintf(tw, "rows without scores skipped:\t%d\n", d.MissingRowsDropped)
	}
	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
