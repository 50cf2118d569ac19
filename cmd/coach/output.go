package main

import (
	"encoding/json"
	"fmt"
	"io"

	"lifecoach/internal/model"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type problemsOutput struct {
	Problems []model.Problem `json:"problems" yaml:"problems"`
}

type recommendationsOutput struct {
	Recommendations []model.Recommendation `json:"recommendations" yaml:"recommendations"`
}

// displayProblems writes the {"problems": [...]} envelope for json and yaml so the
// output can be piped straight into `coach recommend`.
func displayProblems(w io.Writer, problems []model.Problem, format string) error {
	switch format {
	case "json":
		return writeJSON(w, problemsOutput{Problems: problems})
	case "yaml":
		return writeYAML(w, problemsOutput{Problems: problems})
	case "human":
		fallthrough
	default:
		cyan := color.New(color.FgCyan, color.Bold)
		white := color.New(color.FgWhite, color.Bold)

		fmt.Fprintln(w)
		cyan.Fprintln(w, "🧭 YOUR MAIN PROBLEMS:")
		for _, p := range problems {
			white.Fprintf(w, "   %d. %s\n", p.ID, p.Title)
			fmt.Fprintf(w, "      %s\n\n", p.Description)
		}
	}
	return nil
}

func displayRecommendations(w io.Writer, problems []model.Problem, recommendations []model.Recommendation, format string) error {
	switch format {
	case "json":
		return writeJSON(w, recommendationsOutput{Recommendations: recommendations})
	case "yaml":
		return writeYAML(w, recommendationsOutput{Recommendations: recommendations})
	case "human":
		fallthrough
	default:
		green := color.New(color.FgGreen, color.Bold)
		white := color.New(color.FgWhite, color.Bold)

		titles := make(map[int]string, len(problems))
		for _, p := range problems {
			titles[p.ID] = p.Title
		}

		fmt.Fprintln(w)
		green.Fprintln(w, "🚀 RECOMMENDATIONS:")
		for _, r := range recommendations {
			if title, ok := titles[r.ProblemID]; ok {
				white.Fprintf(w, "   %d. %s\n", r.ProblemID, title)
			} else {
				white.Fprintf(w, "   %d.\n", r.ProblemID)
			}
			fmt.Fprintf(w, "      %s\n\n", r.Advice)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func writeYAML(w io.Writer, v any) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}
