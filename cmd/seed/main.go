package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/ritikapurwa08/english-mastery/internal/config"
	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/importer"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
)

func main() {
	wordsCmd := flag.NewFlagSet("words", flag.ExitOnError)
	wordsInput := wordsCmd.String("input", "", "Excel or CSV file with words (required)")
	wordsSheet := wordsCmd.String("sheet", "Sheet1", "Sheet name (Excel only)")
	wordsStartRow := wordsCmd.Int("start-row", 2, "First data row, 1-based")

	questionsCmd := flag.NewFlagSet("questions", flag.ExitOnError)
	questionsInput := questionsCmd.String("input", "", "JSON file with questions (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	wordRepo := repository.NewWordRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	switch os.Args[1] {
	case "words":
		wordsCmd.Parse(os.Args[2:])
		if *wordsInput == "" {
			fmt.Println("Error: -input flag is required")
			wordsCmd.PrintDefaults()
			os.Exit(1)
		}
		importConfig := importer.DefaultWordImportConfig()
		importConfig.FilePath = *wordsInput
		importConfig.SheetName = *wordsSheet
		importConfig.StartRow = *wordsStartRow

		result, err := importer.ImportWords(wordRepo, importConfig)
		if err != nil {
			log.Fatalf("Word import failed: %v", err)
		}
		printResult("Words", result)

	case "questions":
		questionsCmd.Parse(os.Args[2:])
		if *questionsInput == "" {
			fmt.Println("Error: -input flag is required")
			questionsCmd.PrintDefaults()
			os.Exit(1)
		}

		result, err := importer.ImportQuestions(questionRepo, wordRepo, *questionsInput)
		if err != nil {
			log.Fatalf("Question import failed: %v", err)
		}
		printResult("Questions", result)
		printQuestionCounts(questionRepo)

	default:
		printUsage()
		os.Exit(1)
	}
}

func printResult(label string, result *importer.ImportResult) {
	fmt.Printf("%s import complete:\n", label)
	fmt.Printf("  Processed: %d\n", result.TotalProcessed)
	fmt.Printf("  Created:   %d\n", result.Created)
	fmt.Printf("  Updated:   %d\n", result.Updated)
	if len(result.Errors) > 0 {
		fmt.Printf("  Errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("    %s\n", e)
		}
	}
}

func printQuestionCounts(questionRepo *repository.QuestionRepository) {
	counts, err := questionRepo.CountByCategory()
	if err != nil {
		log.Printf("Could not read question counts: %v", err)
		return
	}
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	fmt.Println("Questions available per category:")
	for _, category := range categories {
		fmt.Printf("  %-20s %d\n", category, counts[category])
	}
}

func printUsage() {
	fmt.Println("Usage: seed <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  words      Import words from an Excel or CSV file")
	fmt.Println("  questions  Import quiz questions from a JSON file")
	fmt.Println()
	fmt.Println("Run 'seed <command> -h' for command flags.")
}
