package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	json "github.com/goccy/go-json"
)

// printJSON writes v as indented JSON, or only the part of it matched by
// the jsonpath selector if not empty.
func printJSON(w io.Writer, v any, selector string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if selector != "" {
		var jobj any
		if err := json.Unmarshal(b, &jobj); err != nil {
			return err
		}
		jval, err := jsonpath.Get(selector, jobj)
		if err != nil {
			return fmt.Errorf("error selecting %q: %w", selector, err)
		}
		if b, err = json.Marshal(jval); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
