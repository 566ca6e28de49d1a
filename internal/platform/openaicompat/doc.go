// Package openaicompat implements generation.Model against an
// OpenAI-compatible chat completions endpoint, by default the one Gemini
// exposes under generativelanguage.googleapis.com/v1beta/openai/.
package openaicompat
