package types

// InterviewPrep is the AI-generated preparation aggregate for a tailored
// resume. Every nested object and field is optional: the backend omits
// whatever it could not generate, and absence suppresses the corresponding
// section rather than defaulting to placeholder content.
type InterviewPrep struct {
	ID                        int64                 `json:"id"`
	TailoredResumeID          int64                 `json:"tailored_resume_id"`
	CompanyProfile            *CompanyProfile       `json:"company_profile,omitempty"`
	ValuesAndCulture          *ValuesAndCulture     `json:"values_and_culture,omitempty"`
	StrategyAndNews           *StrategyAndNews      `json:"strategy_and_news,omitempty"`
	RoleAnalysis              *RoleAnalysis         `json:"role_analysis,omitempty"`
	InterviewPreparation      *InterviewPreparation `json:"interview_preparation,omitempty"`
	CandidatePositioning      *CandidatePositioning `json:"candidate_positioning,omitempty"`
	QuestionsToAskInterviewer []InterviewerQuestion `json:"questions_to_ask_interviewer,omitempty"`
}

// CompanyProfile summarizes the target company.
type CompanyProfile struct {
	Name         string   `json:"name,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	Size         string   `json:"size,omitempty"`
	Headquarters string   `json:"headquarters,omitempty"`
	Overview     string   `json:"overview,omitempty"`
	Products     []string `json:"products,omitempty"`
}

// CoreValue is a single company value. The backend is inconsistent about
// whether the label arrives as "title" or "name"; DisplayName tries both.
type CoreValue struct {
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// DisplayName returns the value's label, preferring Title over Name and
// falling back to a literal placeholder when both are absent.
func (v CoreValue) DisplayName() string {
	if v.Title != "" {
		return v.Title
	}
	if v.Name != "" {
		return v.Name
	}
	return "Unknown Value"
}

// ValuesAndCulture covers the company's stated values and working culture.
type ValuesAndCulture struct {
	CoreValues      []CoreValue `json:"core_values,omitempty"`
	CultureSummary  string      `json:"culture_summary,omitempty"`
	WorkEnvironment string      `json:"work_environment,omitempty"`
}

// NewsItem is one recent development about the company.
type NewsItem struct {
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	Date    string `json:"date,omitempty"`
}

// StrategyAndNews covers strategic direction and recent developments.
type StrategyAndNews struct {
	RecentNews          []NewsItem `json:"recent_news,omitempty"`
	StrategicPriorities []string   `json:"strategic_priorities,omitempty"`
	MarketPosition      string     `json:"market_position,omitempty"`
}

// RoleAnalysis breaks down the target role.
type RoleAnalysis struct {
	KeyResponsibilities []string `json:"key_responsibilities,omitempty"`
	RequiredSkills      []string `json:"required_skills,omitempty"`
	NiceToHaveSkills    []string `json:"nice_to_have_skills,omitempty"`
	SuccessFactors      []string `json:"success_factors,omitempty"`
}

// InterviewPreparation is the preparation checklist and study guidance.
type InterviewPreparation struct {
	Tasks           []string `json:"tasks,omitempty"`
	KeyTopics       []string `json:"key_topics,omitempty"`
	CommonQuestions []string `json:"common_questions,omitempty"`
}

// CandidatePositioning describes how the candidate should present themselves.
type CandidatePositioning struct {
	Strengths     []string `json:"strengths,omitempty"`
	GapsToAddress []string `json:"gaps_to_address,omitempty"`
	TalkingPoints []string `json:"talking_points,omitempty"`
	ElevatorPitch string   `json:"elevator_pitch,omitempty"`
}

// InterviewerQuestion is a question the candidate can ask the interviewer.
type InterviewerQuestion struct {
	Question  string `json:"question"`
	Rationale string `json:"rationale,omitempty"`
}
