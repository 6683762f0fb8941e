// Package mocks provides test doubles shared by the service, api and server
// tests. MockGenerator stands in for the language model behind
// generation.Generator:
//
//	gen := mocks.NewMockGeneratorWithReply(`{"total_cards": 1, "flashcards": [...]}`)
//	svc, err := service.NewFlashcardService(gen, prompts, nil)
//	...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
