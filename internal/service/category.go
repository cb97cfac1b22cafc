package service

// The UI layer and the question bank use slightly different category tokens:
// the browser-facing token "phrasal-verbs" is stored as "phrasal verbs".
// The mapping is total and reversible over the five supported categories.

var uiToStorageCategory = map[string]string{
	"vocabulary":    "vocabulary",
	"idioms":        "idioms",
	"grammar":       "grammar",
	"antonyms":      "antonyms",
	"phrasal-verbs": "phrasal verbs",
}

var storageToUICategory = func() map[string]string {
	m := make(map[string]string, len(uiToStorageCategory))
	for ui, storage := range uiToStorageCategory {
		m[storage] = ui
	}
	return m
}()

// NormalizeCategory maps a UI-facing category token to its storage token.
// Unknown tokens are a contract violation.
func NormalizeCategory(uiToken string) (string, error) {
	storage, ok := uiToStorageCategory[uiToken]
	if !ok {
		return "", ErrInvalidArgument
	}
	return storage, nil
}

// DisplayCategory maps a storage category token back to its UI-facing token.
// Tokens outside the supported set pass through unchanged.
func DisplayCategory(storageToken string) string {
	if ui, ok := storageToUICategory[storageToken]; ok {
		return ui
	}
	return storageToken
}

// SupportedCategories lists the UI-facing category tokens
func SupportedCategories() []string {
	return []string{"vocabulary", "idioms", "grammar", "antonyms", "phrasal-verbs"}
}
