// Package pdf splits a PDF document into fixed-size page-range chunks by
// orchestrating external tools: a page-count query (pdfinfo), a page-range
// extractor (qpdf) and an optional PostScript converter (pdftops).
//
// The tools are abstracted behind the [Executor] interface so tests can
// script their behaviour. Success of an extraction is judged by the expected
// output file existing afterwards, not by the tool's exit status; a chunk
// whose output is absent is reported and skipped while the run continues.
package pdf
