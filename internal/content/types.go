package content

// Phase is one of the sequential curriculum units of the apprenticeship.
type Phase struct {
	ID        int      `yaml:"id"`
	Title     string   `yaml:"title"`
	Goal      string   `yaml:"goal"`
	Duration  string   `yaml:"duration"`
	Knowledge []string `yaml:"knowledge"`
	Reading   []string `yaml:"reading"`
	Homework  []string `yaml:"homework"`
	QuizTopic string   `yaml:"quiz_topic"`
}

// CurriculumTopic is the deep-dive topic that holds the detailed
// curriculum text for the phase.
func (p Phase) CurriculumTopic() string {
	return CurriculumTopic(p.ID)
}

// Lesson is an entry of the syllabus listed on the dashboard.
type Lesson struct {
	ID      int    `yaml:"id"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// QuizQuestion is a single multiple-choice question.
// Correct is a 0-based index into Options.
type QuizQuestion struct {
	ID          int      `yaml:"id"`
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
}

// IsCorrect reports whether option is the correct answer.
func (q QuizQuestion) IsCorrect(option int) bool {
	return option == q.Correct
}

// PartSpec is the bench reference card for a movement component.
type PartSpec struct {
	Name          string   `yaml:"name"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Requirements  []string `yaml:"requirements"`
	Clearances    string   `yaml:"clearances"`
	Lubrication   string   `yaml:"lubrication"`
	CriticalCheck string   `yaml:"critical_check"`
}

// Movement describes a caliber available on the bench.
type Movement struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Parts       int    `yaml:"parts"`
	Difficulty  string `yaml:"difficulty"`
	Description string `yaml:"description"`
	ManualURL   string `yaml:"manual_url"`
}

// TechnicalPart is one row of a movement's technical data sheet.
type TechnicalPart struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Lubrication string `yaml:"lubrication,omitempty"`
	Notes       string `yaml:"notes"`
}

// Book is a reference text shown in the library.
type Book struct {
	Title string   `yaml:"title"`
	Focus string   `yaml:"focus"`
	Tags  []string `yaml:"tags"`
}

// Pillar is one of the job-readiness pillars on the career screen.
type Pillar struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ChecklistCategory groups bench-readiness checklist items.
type ChecklistCategory struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// ProtocolStep is one stage of the industry bench-test protocol.
type ProtocolStep struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Career holds the static career-readiness content.
type Career struct {
	Headline  string              `yaml:"headline"`
	Intro     string              `yaml:"intro"`
	Pillars   []Pillar            `yaml:"pillars"`
	Checklist []ChecklistCategory `yaml:"checklist"`
	Protocol  []ProtocolStep      `yaml:"protocol"`
	Quote     string              `yaml:"quote"`
}

// document is the on-disk shape of the curriculum asset.
type document struct {
	Version   string        `yaml:"version"`
	Phases    []Phase       `yaml:"phases"`
	Lessons   []Lesson      `yaml:"lessons"`
	Quizzes   []quizDoc     `yaml:"quizzes"`
	Parts     []PartSpec    `yaml:"parts"`
	Movements []movementDoc `yaml:"movements"`
	Theory    []theoryDoc   `yaml:"theory"`
	Library   libraryDoc    `yaml:"library"`
	Career    Career        `yaml:"career"`
}

type quizDoc struct {
	Phase     int            `yaml:"phase"`
	Questions []QuizQuestion `yaml:"questions"`
}

type movementDoc struct {
	Movement `yaml:",inline"`
	Guide    string          `yaml:"guide"`
	Sheet    []TechnicalPart `yaml:"sheet"`
}

type theoryDoc struct {
	Topic string `yaml:"topic"`
	Text  string `yaml:"text"`
}

type libraryDoc struct {
	Books  []Book   `yaml:"books"`
	Topics []string `yaml:"topics"`
}
