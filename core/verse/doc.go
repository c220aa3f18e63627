// Package verse provides the canonical representation of a single verse
// reference and the parser for human-typed passages.
//
// # References
//
// A Ref is only ever produced by Validate (or by Parse, which calls it), so
// every Ref names a verse that exists in the catalog it was checked against.
// Refs are immutable values; Key gives the comparable identity used for
// deduplication.
//
// # Ordering
//
// Refs order by the book's position in the catalog (canonical Bible order),
// then chapter, then verse. Ordering is never alphabetic on book name, so
// "Matthew 1:1" sorts before "Acts 1:1".
//
// # Passages
//
// Parse accepts the forms people type: "John 3:16", "1 Jn 3:1-3, 5",
// "Song of Songs 2", "ps 23". Book names are resolved through the catalog's
// aliases and every verse is validated; nothing is silently truncated.
package verse
