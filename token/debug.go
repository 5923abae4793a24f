package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, toks []Token) error {
	for i := range toks {
		t := &toks[i]
		if _, err := fmt.Fprintf(w, "%-9s %-12q %d\n", t.Type, t.Text, t.Pos.I); err != nil {
			return err
		}
	}
	return nil
}
