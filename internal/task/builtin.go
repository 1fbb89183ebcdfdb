package task

// Builtin returns the standard three-task benchmark suite, one task per type.
func Builtin() Suite {
	return Suite{
		Version: 1,
		Tasks: []Task{
			{
				ID:    "code_001",
				Type:  TypeCodeGeneration,
				Title: "Conway's Game of Life",
				Prompt: `Implement Conway's Game of Life in Python. Requirements:
- Create a Grid class that can initialize with a given size
- Implement the four rules of Conway's Game of Life:
  1. Any live cell with 2-3 live neighbors survives
  2. Any dead cell with exactly 3 live neighbors becomes alive
  3. All other live cells die, all other dead cells stay dead
- Include methods to: display the grid, advance one generation, count live neighbors
- Provide a simple test case with a known pattern (e.g., blinker or glider)
- Make it runnable as a script that shows several generations

IMPORTANT: Your final answer should be a complete, runnable main.py file that can be copied and pasted directly into a file and executed. Include all necessary code in a single file with proper if __name__ == "__main__": structure.`,
				Criteria: []string{
					"Contains a Grid class",
					"Implements the four rules correctly",
					"Has neighbor counting logic",
					"Includes display functionality",
					"Provides a test case",
					"Is a complete runnable file",
				},
			},
			{
				ID:    "itin_001",
				Type:  TypeItineraryPlanning,
				Title: "European City Tour",
				Prompt: `Plan a 7-day European tour itinerary. Constraints:
- Budget: $2000 USD total
- Start and end in London
- Must visit: Paris, Amsterdam, Berlin
- Interests: Museums, historical sites, local cuisine
- Transportation: Train preferred, flights if necessary
- Accommodation: Mid-range hotels/hostels
- Travel dates: flexible, summer preferred
- Create day-by-day schedule with specific activities, costs, and travel times
- Include backup options for bad weather`,
				Criteria: []string{
					"Covers all 7 days",
					"Visits all required cities",
					"Stays within budget",
					"Includes specific activities",
					"Shows transportation details",
					"Has cost breakdown",
				},
			},
			{
				ID:    "proc_001",
				Type:  TypeProcedureStructuring,
				Title: "Software Deployment Process",
				Prompt: `Restructure this vague deployment instruction into clear steps:
"Deploy the new version to production. Make sure to backup everything first and test it. Don't forget about the database migration and updating the configs. If something breaks, roll back. Also notify the team when done and update documentation."

Transform this into a detailed, step-by-step procedure that could be followed by any team member.`,
				Criteria: []string{
					"Clear sequential steps",
					"Includes all mentioned tasks",
					"Has verification points",
					"Covers error handling",
					"Specifies responsibilities",
				},
			},
		},
	}
}
