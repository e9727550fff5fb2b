package lockbox

import "fmt"

// Prompt is everything a renderer needs to draw the connection prompt.
type Prompt struct {
	Step        StepName
	CurrentStep int
	TotalSteps  int
	Title       string
	Content     string
	Image       string
	ImageSet    string
	// Marquees holds numbered hints and is only populated in the ready step.
	Marquees []string
}

// BuildPrompt resolves the current step and renders its text for coin.
func BuildPrompt(status Status, coin string, marquees []string) Prompt {
	step := SelectStep(status)
	p := Prompt{
		Step:        step.Name,
		CurrentStep: step.Index,
		TotalSteps:  TotalSteps,
		Title:       step.Title(),
		Content:     step.Content(coin),
		Image:       step.Image(),
		ImageSet:    step.ImageSet(),
	}
	if step.Name == StepReady && len(marquees) > 0 {
		p.Marquees = make([]string, len(marquees))
		for i, m := range marquees {
			p.Marquees[i] = fmt.Sprintf("%d. %s", i+1, m)
		}
	}
	return p
}
