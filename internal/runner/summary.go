package runner

// summarize aggregates result records overall and per group.
func summarize(records []ResultRecord) Summary {
	summary := Summary{
		UnitsTotal: len(records),
		Frameworks: map[string]GroupStats{},
		TaskTypes:  map[string]GroupStats{},
	}
	var scoreTotal float64
	var scored int
	for _, record := range records {
		if record.Success {
			summary.UnitsSucceeded++
			scoreTotal += record.Score
			scored++
		} else {
			summary.UnitsFailed++
		}
		if record.Passed {
			summary.UnitsPassed++
		}
		summary.TokensTotal += record.TotalTokens
		summary.Frameworks[record.Framework] = accumulate(summary.Frameworks[record.Framework], record)
		summary.TaskTypes[record.TaskType] = accumulate(summary.TaskTypes[record.TaskType], record)
	}
	if summary.UnitsTotal > 0 {
		summary.PassRate = float64(summary.UnitsPassed) / float64(summary.UnitsTotal)
	}
	if scored > 0 {
		summary.AverageScore = scoreTotal / float64(scored)
	}
	for key, stats := range summary.Frameworks {
		summary.Frameworks[key] = finalize(stats)
	}
	for key, stats := range summary.TaskTypes {
		summary.TaskTypes[key] = finalize(stats)
	}
	return summary
}

// accumulate folds a record into group stats. Averages are carried as
// totals until finalize divides them.
func accumulate(stats GroupStats, record ResultRecord) GroupStats {
	stats.Units++
	if record.Success {
		stats.Succeeded++
		stats.AverageScore += record.Score
	}
	if record.Passed {
		stats.Passed++
	}
	stats.AverageSeconds += record.DurationSeconds
	stats.AverageSteps += float64(record.ReasoningSteps)
	stats.TokensTotal += record.TotalTokens
	return stats
}

func finalize(stats GroupStats) GroupStats {
	if stats.Units > 0 {
		stats.PassRate = float64(stats.Passed) / float64(stats.Units)
		stats.AverageSeconds /= float64(stats.Units)
		stats.AverageSteps /= float64(stats.Units)
	}
	if stats.Succeeded > 0 {
		stats.AverageScore /= float64(stats.Succeeded)
	}
	return stats
}
