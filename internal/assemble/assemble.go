// Package assemble builds complete LaTeX documents from per-page fragments.
package assemble

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Fragment is the LaTeX text produced for a single page.
type Fragment struct {
	Page    int // 0-based source page index
	Content string
}

// PageSeparator marks page boundaries in the assembled document.
const PageSeparator = "\n\n% ===== NEW PAGE =====\n\n"

// Preamble opens the assembled document. The package list is fixed; the
// model is prompted to emit body-only LaTeX that compiles under it.
const Preamble = `
\documentclass{amsart}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{graphicx}
\usepackage{amsmath}
\usepackage{amssymb}
\usepackage{hyperref}
\usepackage{natbib}
\usepackage{booktabs}
\usepackage{float}
\usepackage{array}
\usepackage{multirow}
\usepackage{longtable}
\usepackage{mathrsfs}


\begin{document}

\maketitle
`

// Postamble terminates the assembled document.
const Postamble = "\n\n\\end{document}"

// Document wraps the fragments, in the order given, into a complete LaTeX
// document. Fragment content is trusted as valid LaTeX; nothing is escaped
// or validated here.
func Document(fragments []Fragment) string {
	var sb strings.Builder
	sb.WriteString(Preamble)
	for i, frag := range fragments {
		if i > 0 {
			sb.WriteString(PageSeparator)
		}
		sb.WriteString(frag.Content)
	}
	sb.WriteString(Postamble)
	return sb.String()
}

// DefaultOutputPath derives the output file name from the input PDF.
// e.g., "papers/theorie.pdf" -> "theorie_translated_en.tex" (in the
// working directory).
func DefaultOutputPath(pdfPath string) string {
	base := filepath.Base(pdfPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_translated_en.tex"
}

// BatchOutputPath derives the checkpoint file name for batch n (1-based)
// from the final output path. e.g., ("theorie.tex", 2) -> "theorie_batch2.tex".
func BatchOutputPath(output string, n int) string {
	stem := strings.TrimSuffix(output, filepath.Ext(output))
	return fmt.Sprintf("%s_batch%d.tex", stem, n)
}
