// Package xmlcodec renders containers as XML.
//
// The XML form is encode-only: an export surface for tooling that
// wants markup, never a parse source. Values carry their name and
// type name as attributes and their canonical text form as content;
// arrays and nested containers nest as child elements. All text is
// XML-escaped, so names and string payloads with markup characters
// render safely.
package xmlcodec
