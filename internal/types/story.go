package types

import "github.com/go-playground/validator/v10"

// STARStory is a behavioral story in Situation/Task/Action/Result form.
// Detail and list views share this shape; only the four STAR fields are
// guaranteed to be present.
type STARStory struct {
	ID             int64    `json:"id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Situation      string   `json:"situation"`
	Task           string   `json:"task"`
	Action         string   `json:"action"`
	Result         string   `json:"result"`
	Theme          string   `json:"theme,omitempty"`
	CompanyContext string   `json:"company_context,omitempty"`
	KeyThemes      []string `json:"key_themes,omitempty"`
	TalkingPoints  []string `json:"talking_points,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
}

// CreateStoryRequest is the payload for authoring a new STAR story.
type CreateStoryRequest struct {
	Title     string `json:"title,omitempty"`
	Situation string `json:"situation" validate:"required"`
	Task      string `json:"task" validate:"required"`
	Action    string `json:"action" validate:"required"`
	Result    string `json:"result" validate:"required"`
	Theme     string `json:"theme,omitempty"`
}

// Validate validates the CreateStoryRequest using the validator.
func (r *CreateStoryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// StoryAnalysis is the backend's structured feedback on a STAR story.
type StoryAnalysis struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// StoryVariation is one alternate telling of a story.
type StoryVariation struct {
	Style string    `json:"style,omitempty"`
	Story STARStory `json:"story"`
}
