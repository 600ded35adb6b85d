// ABOUTME: Recognizer: tries every pattern of every intent against one input
// ABOUTME: Returns all successful extractions in intent then pattern declaration order

package intent

import "context"

// Recognizer is a read-only view over an Engine. Safe for concurrent use.
type Recognizer struct {
	engine    *Engine
	extractor *Extractor
}

// NewRecognizer creates a recognizer over engine.
func NewRecognizer(engine *Engine) *Recognizer {
	return &Recognizer{
		engine:    engine,
		extractor: NewExtractor(engine.Compiler()),
	}
}

// Recognize returns every match for text. The same intent may appear more
// than once; an empty result means nothing understood the input.
func (r *Recognizer) Recognize(text string) []ExtractedSlots {
	results, _ := r.RecognizeContext(context.Background(), text)
	return results
}

// RecognizeContext is Recognize with cancellation checked before every match
// attempt. On cancellation it returns the matches found so far and ctx.Err().
func (r *Recognizer) RecognizeContext(ctx context.Context, text string) ([]ExtractedSlots, error) {
	results := []ExtractedSlots{}
	for _, in := range r.engine.Intents() {
		for _, p := range in.Patterns {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if m, ok := r.extractor.FromPattern(p, text, in.Name, in.Slots); ok {
				results = append(results, m)
			}
		}
		for _, rx := range in.RegexPatterns {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if m, ok := r.extractor.FromRegex(rx, text, in.Name, in.Slots); ok {
				results = append(results, m)
			}
		}
	}
	return results, nil
}

// Engine returns the engine this recognizer reads from.
func (r *Recognizer) Engine() *Engine {
	return r.engine
}
