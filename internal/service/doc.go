// Package service contains the application-specific use cases. It
// orchestrates the generation adapter and the language model collaborator to
// turn a wishlist into validated outfits.
//
// Services receive their dependencies through constructor injection and
// never depend on a specific provider SDK. Every failure is returned wrapped
// in an OutfitServiceError whose chain still matches one of the
// generation error kinds via errors.Is, so the API layer can map it to a
// response without inspecting message text.
package service
