package eval

import (
	"fmt"
	"regexp"
	"strings"
)

// itineraryFeatures captures the structural signals of a travel plan answer.
type itineraryFeatures struct {
	dayCount         int
	citiesMentioned  []string
	coversAllCities  bool
	hasDailyPlan     bool
	hasTransport     bool
	hasSpecificTimes bool
	hasBudgetInfo    bool
	hasCostDetails   bool
	hasActivities    bool
	hasBackupPlans   bool
	hasTableFormat   bool
	detailLevel      string
	wordCount        int
}

var (
	requiredCities = []string{"london", "paris", "amsterdam", "berlin"}
	transportTerms = []string{"train", "eurostar", "thalys", "ice", "flight", "rail", "plane"}
	activityTerms  = []string{"museum", "tour", "visit", "see", "explore", "walk", "gallery", "cathedral", "palace"}
	backupTerms    = []string{"backup", "fallback", "alternative", "rain", "weather", "indoor"}
	costSymbols    = []string{"$", "€", "£"}
	budgetTerms    = []string{"$", "€", "£", "cost", "budget", "price", "total", "usd", "euro"}

	dayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`day\s*\d+`),
		regexp.MustCompile(`day\s+(one|two|three|four|five|six|seven)`),
		regexp.MustCompile(`sunday|monday|tuesday|wednesday|thursday|friday|saturday`),
	}
	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}:\d{2}`),
		regexp.MustCompile(`\d{1,2}\s*(am|pm)`),
		regexp.MustCompile(`morning|afternoon|evening|night`),
	}
)

func extractItineraryFeatures(text string) itineraryFeatures {
	lower := strings.ToLower(text)
	f := itineraryFeatures{
		wordCount:   len(strings.Fields(text)),
		detailLevel: "low",
	}
	for _, pattern := range dayPatterns {
		f.dayCount += len(pattern.FindAllString(lower, -1))
	}
	f.hasDailyPlan = f.dayCount >= 6
	for _, city := range requiredCities {
		if strings.Contains(lower, city) {
			f.citiesMentioned = append(f.citiesMentioned, city)
		}
	}
	f.coversAllCities = len(f.citiesMentioned) == len(requiredCities)
	f.hasTransport = containsAny(lower, transportTerms)
	for _, pattern := range timePatterns {
		if pattern.MatchString(lower) {
			f.hasSpecificTimes = true
			break
		}
	}
	f.hasBudgetInfo = containsAny(lower, budgetTerms)
	f.hasCostDetails = countOccurrences(lower, costSymbols) >= 10
	f.hasActivities = countOccurrences(lower, activityTerms) >= 8
	f.hasBackupPlans = containsAny(lower, backupTerms)
	f.hasTableFormat = strings.Contains(text, "|") &&
		(strings.Contains(text, "---") || strings.Contains(text, "===="))
	if f.wordCount > 800 && f.hasTableFormat {
		f.detailLevel = "high"
	} else if f.wordCount > 400 {
		f.detailLevel = "medium"
	}
	return f
}

// scoreItinerary weighs plan features: 50 core, 30 detail, 20 advanced,
// with a brevity penalty.
func scoreItinerary(output string) (float64, []string) {
	var issues []string
	f := extractItineraryFeatures(output)

	total := 0.0
	if f.coversAllCities {
		total += 15
	} else {
		total += float64(len(f.citiesMentioned)) * 3
		issues = append(issues, fmt.Sprintf("Missing required cities: %v", missingCities(f.citiesMentioned)))
	}
	if f.hasDailyPlan {
		total += 15
	} else {
		total += minFloat(float64(f.dayCount)*2, 10)
		issues = append(issues, "Missing proper 7-day structure")
	}
	add := func(ok bool, points float64, issue string) {
		if ok {
			total += points
		} else if issue != "" {
			issues = append(issues, issue)
		}
	}
	add(f.hasBudgetInfo, 10, "Missing budget breakdown or cost information")
	add(f.hasTransport, 10, "Missing transportation details")
	add(f.hasSpecificTimes, 10, "Missing specific times and scheduling")
	add(f.hasActivities, 10, "Insufficient activity details")
	add(f.hasCostDetails, 10, "Missing detailed cost breakdown")
	add(f.hasBackupPlans, 10, "")
	add(f.hasTableFormat, 5, "")
	total += detailPoints(f.detailLevel)
	if f.wordCount < 300 {
		total -= 15
		issues = append(issues, "Response too brief for a complete 7-day itinerary")
	}
	return clampScore(total), issues
}

func missingCities(mentioned []string) []string {
	have := make(map[string]bool, len(mentioned))
	for _, city := range mentioned {
		have[city] = true
	}
	var missing []string
	for _, city := range requiredCities {
		if !have[city] {
			missing = append(missing, city)
		}
	}
	return missing
}

func detailPoints(level string) float64 {
	switch level {
	case "high":
		return 5
	case "medium":
		return 3
	default:
		return 0
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func countOccurrences(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		count += strings.Count(text, term)
	}
	return count
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
