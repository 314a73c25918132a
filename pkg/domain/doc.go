/*
Package domain contains the core domain models of the cipherkit engine.

It defines the vocabulary shared by the codecs, the transformation engine,
the history log and the session controller. This package is kept pure and
free of I/O, following the same hexagonal split as the rest of the module.

# Key Entities

  - Method: the selected transformation scheme (Base64, URL, HTML, Caesar, Binary, Hex, JSON).
  - Mode: whether text is encoded or decoded. For JSON, decode means minify.
  - Request: one transformation call (text, method, mode, optional shift).
  - TransformError: a recoverable codec failure tagged with an ErrorKind.
  - HistoryEntry: an immutable record of a past transformation.
  - Snapshot: the read-only view of a session used for rendering.
*/
package domain
