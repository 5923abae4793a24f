package libdiff

import (
	"strings"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff returns a line diff of the canonical texts of from and to.
// Removed lines are prefixed with "-", added lines with "+" and common
// lines with " ".  If colored is set, removed and added lines are colored.
// The result is empty if the texts are equal.
func TextDiff(from, to *ir.Node, colored bool) string {
	fromText := encode.Text(from) + "\n"
	toText := encode.Text(to) + "\n"
	if fromText == toText {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del, ins := fmtPlain, fmtPlain
	if colored {
		del = color.New(color.FgRed).SprintFunc()
		ins = color.New(color.FgGreen).SprintFunc()
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffpatch.DiffDelete:
				buf.WriteString(del("-" + line))
			case diffpatch.DiffInsert:
				buf.WriteString(ins("+" + line))
			default:
				buf.WriteString(" " + line)
			}
		}
	}
	return buf.String()
}

func fmtPlain(a ...any) string {
	return a[0].(string)
}

// EditString renders string edits inline: deletions as [-x-] and
// insertions as {+x+}.
func EditString(edits []diffpatch.Diff) string {
	buf := &strings.Builder{}
	for _, e := range edits {
		switch e.Type {
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + e.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + e.Text + "+}")
		default:
			buf.WriteString(e.Text)
		}
	}
	return buf.String()
}
