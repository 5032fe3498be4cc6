// Package io encodes luthier results for output.
//
// # Formats
//
// Three machine-readable formats are supported:
//
//   - json: indented with two spaces, one trailing newline
//   - toml: via github.com/BurntSushi/toml
//   - yaml: via gopkg.in/yaml.v3
//
// The human-readable "text" format is not handled here; the CLI renders it
// with lipgloss styles because it depends on the terminal.
//
// Values are encoded through their struct tags, so every result type in
// luthier carries json, toml and yaml tags with the same snake_case keys.
//
// # Usage
//
//	c, err := convert.Convert("25.5 in", ruler.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	return io.Write(os.Stdout, io.FormatYAML, c)
//
// An unknown format fails with errors.ErrCodeInvalidFormat before anything
// is written.
package io
