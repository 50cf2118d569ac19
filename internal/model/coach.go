package model

type Problem struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Recommendation struct {
	ProblemID int    `json:"problem_id" yaml:"problem_id"`
	Advice    string `json:"advice" yaml:"advice"`
}
