// Package lexer splits source text into code and comment spans.
//
// The scanner is a single forward pass over a fully materialized buffer,
// driven by an explicit transition function (Dialect.Step) over a tagged
// State. It understands just enough lexical structure to keep comment
// markers inside string, char and raw string literals from being treated
// as comments:
//
//   - // line comments, ending before the newline (the newline stays code)
//   - /* block comments */, closed by the first */ (no nesting)
//   - "double quoted" and 'single quoted' literals with backslash escapes
//   - r"raw" and r#"raw"# strings when Dialect.RawStrings is set
//   - 'a lifetimes when Dialect.Lifetimes is set
//
// Example:
//
//	spans, err := lexer.New().Scan(`x := "a // b" // note`)
//	// spans: [code `x := "a // b" `] [line comment `// note`]
//
// The returned spans are contiguous and cover the input exactly, so
// concatenating their text reconstructs the input byte for byte.
// Input that ends inside a block comment or literal is rejected with a
// *ScanError that records where the construct began.
package lexer
