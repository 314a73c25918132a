/*
Package cipherkit transforms text through reversible encodings and keeps a
bounded history of recent transformations for recall.

It separates the stateless transformation engine (codecs and dispatch) from
the session state machine (current input, method, mode, shift and history).
Sessions recompute their output on every transition and never share state.

# Methods

base64, url, html, caesar, binary, hex and json. Every method has an encode
and a decode direction; for json these mean "format" and "minify".

# Usage

	eng := cipherkit.New()

	out, err := eng.Encode(domain.MethodBase64, "Hello", 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out) // SGVsbG8=

	s := eng.NewSession()
	s.SetInput("Hello")
	s.ToggleMode() // archives, then decodes "SGVsbG8=" back to "Hello"

Codec failures are returned as *domain.TransformError. Match them with
errors.Is against the domain sentinels (domain.ErrInvalidBase64, ...) or read
their kind with domain.KindOf.
*/
package cipherkit
