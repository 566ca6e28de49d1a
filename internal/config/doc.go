// Package config handles configuration loading, parsing, and validation
// from various sources (.env file, config.yaml, environment variables). It
// provides type-safe access to application settings needed by different
// components while keeping configuration details separate from business logic.
//
// Environment variables use the OUTFIT_ prefix with "." replaced by "_"
// (e.g. OUTFIT_SERVER_PORT). The Gemini credential and model may also be set
// through GEMINI_API_KEY and GEMINI_MODEL.
package config
