/* Package intern implements naive string internment.

Interning deduplicates recurring strings, such as the identifiers,
keywords, and labels seen by compilers and other language tooling,
representing each distinct string by a small Symbol value. Symbols
cost one word, compare in O(1), and hash trivially, in exchange for
O(n) heap space to store each unique string once.

Interned strings are never garbage collected: a Table retains every
string it has ever seen for as long as the Table itself lives, and the
process-wide table used by the package-level functions lives until
process exit. That memory is intentionally "leaked", which suits
short-lived processes where repeated strings dominate; it is the wrong
tool for a long-running server interning unbounded input.

Most callers use the package-level Intern and Resolve, which share one
lazily-created process-wide Table and are safe for concurrent use. A
program needing an isolated namespace, or wanting to skip locking
entirely, can construct its own Table and confine it to one goroutine;
Symbols from an explicit Table are only meaningful to that Table.
*/
package intern
