package types

// PracticeQuestion is a generated interview question scoped to an interview
// prep. Questions are not persisted by id; they live only in screen state
// until the user saves a response.
type PracticeQuestion struct {
	Question        string   `json:"question"`
	Category        string   `json:"category,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	WhyAsked        string   `json:"why_asked,omitempty"`
	KeySkillsTested []string `json:"key_skills_tested,omitempty"`
}

// PracticeResponse is a saved practice attempt. The backend matches on
// (prep id, question text): one save call creates or updates a record.
type PracticeResponse struct {
	ID              int64      `json:"id"`
	QuestionText    string     `json:"question_text"`
	Category        string     `json:"category,omitempty"`
	WrittenAnswer   string     `json:"written_answer,omitempty"`
	STARStory       *STARStory `json:"star_story,omitempty"`
	TimesPracticed  int        `json:"times_practiced"`
	LastPracticedAt string     `json:"last_practiced_at,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
}

// SavePracticeRequest is the payload for saving a practice response.
// DurationSeconds is included only when a practice timer ran.
type SavePracticeRequest struct {
	InterviewPrepID int64      `json:"interview_prep_id" validate:"required"`
	QuestionText    string     `json:"question_text" validate:"required"`
	Category        string     `json:"category,omitempty"`
	STARStory       *STARStory `json:"star_story,omitempty"`
	WrittenAnswer   string     `json:"written_answer,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
}
