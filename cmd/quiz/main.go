// Interactive terminal version of the career quiz, useful for trying the
// scoring engine without running the API.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"naijapath/internal/catalog"
	"naijapath/internal/domain"
	"naijapath/internal/service"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	questions := catalog.Questions()
	careers := catalog.Careers()

	logger := zap.NewNop()
	analysisSvc, err := service.NewCareerAnalysisService(questions, careers, logger)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("NaijaPath career quiz")
	fmt.Printf("%d questions. Press Enter without typing to skip one.\n\n", len(questions))

	answers := make([]domain.Answer, 0, len(questions))
	for i, q := range questions {
		fmt.Printf("[%d/%d] %s\n", i+1, len(questions), q.Text)
		if q.Description != "" {
			fmt.Println(q.Description)
		}
		answers = append(answers, readAnswer(reader, q))
		fmt.Println()
	}

	result, err := analysisSvc.Analyze(answers)
	if err != nil {
		log.Fatal(err)
	}

	printResult(result)
}

func readAnswer(reader *bufio.Reader, q domain.Question) domain.Answer {
	switch q.AnswerType {
	case domain.AnswerSingleChoice:
		printOptions(q.Options)
		if idx, ok := readIndex(reader, "Choice number: ", len(q.Options)); ok {
			return domain.SingleChoice(q.Options[idx])
		}
	case domain.AnswerMultiSelect:
		printOptions(q.Options)
		fmt.Printf("Up to %d, comma-separated (e.g. 1,3): ", q.MaxSelections)
		line, _ := reader.ReadString('\n')
		var selected []string
		for _, part := range strings.Split(line, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || idx < 1 || idx > len(q.Options) {
				continue
			}
			selected = append(selected, q.Options[idx-1])
			if len(selected) == q.MaxSelections {
				break
			}
		}
		if len(selected) > 0 {
			return domain.MultiSelect(selected...)
		}
	case domain.AnswerRating:
		ratings := make(map[string]int, len(q.Options))
		for _, factor := range q.Options {
			if idx, ok := readIndex(reader, fmt.Sprintf("  %s (1-5): ", factor), 5); ok {
				ratings[factor] = idx + 1
			}
		}
		if len(ratings) > 0 {
			return domain.Rating(ratings)
		}
	}
	return domain.Answer{}
}

func printOptions(options []string) {
	for i, option := range options {
		fmt.Printf("  %2d. %s\n", i+1, option)
	}
}

// readIndex reads a 1-based choice and returns it 0-based. ok is false on a
// blank or unparsable line, which counts as a skip.
func readIndex(reader *bufio.Reader, prompt string, max int) (int, bool) {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n - 1, true
}

func printResult(result domain.AnalysisResult) {
	fmt.Println("=== Your career matches ===")
	for i, m := range result.Matches {
		fmt.Printf("\n%d. %s (%d%% match)\n", i+1, m.Career.Title, m.MatchPercent)
		fmt.Printf("   Salary: %s | Demand: %s\n", m.Career.MarketContext.AverageSalary, m.Career.MarketContext.Demand)
		for _, reason := range m.Reasons {
			fmt.Printf("   * %s\n", reason)
		}
		if len(m.SkillGaps) > 0 {
			fmt.Printf("   Skills to build: %s\n", strings.Join(m.SkillGaps, ", "))
		}
		for _, step := range m.NextSteps {
			fmt.Printf("   -> %s\n", step)
		}
	}
	fmt.Println("\n=== Recommendations ===")
	for _, rec := range result.Recommendations {
		fmt.Printf("- %s\n", rec)
	}
}
