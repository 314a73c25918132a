/*
Package codec implements the fixed set of text codecs.

Every codec exposes Encode and Decode. Failures are returned as
*domain.TransformError values tagged with the matching domain.ErrorKind.
Encode only fails for JSON (both directions parse first); HTML and Caesar
never fail at all.

Binary and Hex work on single code points with one-byte tokens. Code points
above 255 encode to wider tokens that Decode rejects, so such text does not
round-trip through those two codecs.
*/
package codec
