package service

import (
	"fmt"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
)

// WordService serves the word catalog joined with the caller's progress
type WordService struct {
	wordRepo     *repository.WordRepository
	progressRepo *repository.ProgressRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo *repository.WordRepository, progressRepo *repository.ProgressRepository) *WordService {
	return &WordService{
		wordRepo:     wordRepo,
		progressRepo: progressRepo,
	}
}

// WordListing is one page of words with the caller's progress attached
type WordListing struct {
	Words   []models.WordWithProgress `json:"words"`
	HasMore bool                      `json:"hasMore"`
}

// ListWords returns a filtered page of words, each joined with the user's
// progress in one batched lookup. Missing progress means status "new" and
// is represented by a nil Progress.
func (s *WordService) ListWords(userID int64, filter repository.WordFilter) (*WordListing, error) {
	words, hasMore, err := s.wordRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	wordIDs := make([]int64, len(words))
	for i, word := range words {
		wordIDs[i] = word.ID
	}

	progressByWord, err := s.progressRepo.GetForWords(userID, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to join progress: %w", err)
	}

	listing := &WordListing{
		Words:   make([]models.WordWithProgress, len(words)),
		HasMore: hasMore,
	}
	for i, word := range words {
		listing.Words[i] = models.WordWithProgress{
			Word:     word,
			Progress: progressByWord[word.ID],
		}
	}

	return listing, nil
}

// ListFavorites returns the user's favorited words, most recently reviewed
// first. Words deleted since being favorited are skipped.
func (s *WordService) ListFavorites(userID int64) ([]models.WordWithProgress, error) {
	records, err := s.progressRepo.ListFavorites(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	favorites := make([]models.WordWithProgress, 0, len(records))
	for i := range records {
		word, err := s.wordRepo.GetByID(records[i].WordID)
		if err != nil {
			return nil, fmt.Errorf("failed to get word: %w", err)
		}
		if word == nil {
			continue
		}
		favorites = append(favorites, models.WordWithProgress{
			Word:     *word,
			Progress: &records[i],
		})
	}

	return favorites, nil
}

// GetWord returns a single word with the user's progress attached
func (s *WordService) GetWord(userID, wordID int64) (*models.WordWithProgress, error) {
	word, err := s.wordRepo.GetByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	if word == nil {
		return nil, fmt.Errorf("%w: word %d", ErrNotFound, wordID)
	}

	progress, err := s.progressRepo.Get(userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return &models.WordWithProgress{Word: *word, Progress: progress}, nil
}
