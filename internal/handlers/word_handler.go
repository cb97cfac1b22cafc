package handlers

import (
	"net/http"
	"strconv"

	"github.com/ritikapurwa08/english-mastery/internal/repository"
	"github.com/ritikapurwa08/english-mastery/internal/service"
)

const defaultPageSize = 20

// WordHandler handles word catalog browsing
type WordHandler struct {
	wordService *service.WordService
}

// NewWordHandler creates a new word handler
func NewWordHandler(wordService *service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// List returns a filtered page of words with the caller's progress.
// Supported query parameters: category, difficulty, search, page, pageSize,
// excludeMastered.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	query := r.URL.Query()

	page := 1
	if v := query.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	pageSize := defaultPageSize
	if v := query.Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}
	if pageSize > repository.MaxPageSize {
		pageSize = repository.MaxPageSize
	}

	filter := repository.WordFilter{
		Difficulty: query.Get("difficulty"),
		Search:     query.Get("search"),
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}
	// The catalog stores the storage token ("phrasal verbs"), not the UI one
	if v := query.Get("category"); v != "" {
		storage, err := service.NormalizeCategory(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Unknown category", nil)
			return
		}
		filter.Category = storage
	}
	if query.Get("excludeMastered") == "true" {
		filter.ExcludeMasteredFor = user.ID
	}

	listing, err := h.wordService.ListWords(user.ID, filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, listing)
}

// Favorites returns the caller's favorited words
func (h *WordHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	favorites, err := h.wordService.ListFavorites(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"words": favorites})
}

// Get returns a single word with the caller's progress
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	wordID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word id", nil)
		return
	}

	word, err := h.wordService.GetWord(user.ID, wordID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, word)
}
