// Package gemini provides an implementation of the generation.Model interface
// that uses Google's Gemini API to answer outfit-building prompts.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's generation logic to Google's external Gemini
// service without exposing SDK types to the rest of the application.
//
// Each call is single-shot: one user prompt plus a fixed system instruction,
// one reply. There is no retry; any failure of the call itself is reported as
// generation.ErrProviderCallFailed, and a reply without candidate text as
// generation.ErrEmptyProviderResponse.
//
// The package depends on the google.golang.org/genai client library for
// authentication, request formatting and transport.
package gemini
