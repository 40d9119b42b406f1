// Package askdocs provides an HTTP question-answering service over a local
// directory of markdown knowledge files. Answer synthesis is delegated to an
// external LLM provider; the code here owns only the knowledge registry, the
// response envelope, and best-effort source attribution.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, openai/, gemini/, http/).
package askdocs
