// Package rizz implements the lexical front end for RizzLang. Source text is
// scanned by a single table-driven state machine into tokens of these kinds:
//   - Identifiers made of lowercase letters a-z.
//   - Keywords (int, bool, float, char, in, out, input, output, if, else,
//     while, boolean, integer, decimal) and the boolean literals true/false.
//   - Integers and decimals; decimals keep at most five fractional digits.
//   - Single-character operators: + - * / % ^ = < > ( ).
//   - Strings in double or single quotes, without escape sequences.
//
// Comments use `//` to end of line or `/* ... */`. A second pass merges
// `<operand> <operator> <operand>` triples into ARITHMETIC tokens, and the
// identifiers that remain populate a symbol table. Lexical problems never
// stop a scan; each one yields an ERROR token and a diagnostic.
package rizz
